package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"booking-insights/models"
)

// CSVWriter exports scored hotel groups to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	// Write header
	if err := w.Write([]string{
		"destination_country", "hotel_name", "destination_city",
		"bookings", "avg_price", "avg_margin", "avg_discount",
		"price_score", "profit_score", "discount_score", "final_score",
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteScores appends one row per scored group, in the order given.
func (c *CSVWriter) WriteScores(scores []*models.GroupScore) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, sc := range scores {
		m := sc.Metrics
		row := []string{
			m.DestCountry,
			m.Hotel,
			m.DestCity,
			strconv.Itoa(m.Count),
			fmt.Sprintf("%.2f", m.AvgPrice),
			fmt.Sprintf("%.4f", m.AvgMargin),
			fmt.Sprintf("%.4f", m.AvgDiscount),
			fmt.Sprintf("%.2f", sc.PriceScore),
			fmt.Sprintf("%.2f", sc.ProfitScore),
			fmt.Sprintf("%.2f", sc.DiscountScore),
			fmt.Sprintf("%.2f", sc.FinalScore),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
