package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"booking-insights/models"
	"booking-insights/utils"
)

// PostgresWriter archives scored hotel groups to PostgreSQL. Each run
// appends a new set of rows so historic runs stay queryable.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{
		MaxAttempts: 5,
		BaseDelay:   2 * time.Second,
		Logger:      logger,
	}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS hotel_group_scores (
			id                  SERIAL PRIMARY KEY,
			destination_country TEXT          NOT NULL,
			hotel_name          TEXT          NOT NULL,
			destination_city    TEXT          NOT NULL,
			bookings            INTEGER       NOT NULL DEFAULT 0,
			avg_price           NUMERIC(12,2) NOT NULL DEFAULT 0,
			avg_margin          NUMERIC(8,4)  NOT NULL DEFAULT 0,
			avg_discount        NUMERIC(8,4)  NOT NULL DEFAULT 0,
			price_score         NUMERIC(6,2)  NOT NULL DEFAULT 0,
			profit_score        NUMERIC(6,2)  NOT NULL DEFAULT 0,
			discount_score      NUMERIC(6,2)  NOT NULL DEFAULT 0,
			final_score         NUMERIC(6,2)  NOT NULL DEFAULT 0,
			run_at              TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_scores_run_at      ON hotel_group_scores(run_at);
		CREATE INDEX IF NOT EXISTS idx_scores_final_score ON hotel_group_scores(final_score);
	`)
	return err
}

// WriteScores batch-inserts all scored groups for the current run.
func (pw *PostgresWriter) WriteScores(scores []*models.GroupScore) error {
	if len(scores) == 0 {
		return nil
	}

	const batchSize = 50
	for i := 0; i < len(scores); i += batchSize {
		end := i + batchSize
		if end > len(scores) {
			end = len(scores)
		}
		if err := pw.insertBatch(scores[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []*models.GroupScore) error {
	const cols = 11

	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, sc := range batch {
		base := idx * cols
		placeholders := make([]string, cols)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")

		m := sc.Metrics
		valueArgs = append(valueArgs,
			m.DestCountry, m.Hotel, m.DestCity, m.Count,
			m.AvgPrice, m.AvgMargin, m.AvgDiscount,
			sc.PriceScore, sc.ProfitScore, sc.DiscountScore, sc.FinalScore)
	}

	query := fmt.Sprintf(`
		INSERT INTO hotel_group_scores (
			destination_country, hotel_name, destination_city, bookings,
			avg_price, avg_margin, avg_discount,
			price_score, profit_score, discount_score, final_score
		)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	if err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
