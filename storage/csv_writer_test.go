package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"booking-insights/models"
)

func sampleScores() []*models.GroupScore {
	return []*models.GroupScore{
		{
			Metrics: &models.GroupMetrics{
				Key:         "France|Hotel Lumière|Paris",
				DestCountry: "France",
				Hotel:       "Hotel Lumière",
				DestCity:    "Paris",
				Count:       2,
				AvgPrice:    150,
				AvgMargin:   0.3,
				AvgDiscount: 0.2,
			},
			PriceScore:    45.45,
			ProfitScore:   50,
			DiscountScore: 100,
			FinalScore:    65.15,
		},
		{
			Metrics: &models.GroupMetrics{
				Key:         "Japan|Sakura Inn|Tokyo",
				DestCountry: "Japan",
				Hotel:       "Sakura Inn",
				DestCity:    "Tokyo",
				Count:       1,
				AvgPrice:    120,
				AvgMargin:   0.1,
				AvgDiscount: 0.05,
			},
			PriceScore:    72.73,
			ProfitScore:   100,
			DiscountScore: 25,
			FinalScore:    65.91,
		},
	}
}

func readBack(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	return rows
}

func TestCSVWriterWritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "scores.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	if err := w.WriteScores(sampleScores()); err != nil {
		t.Fatalf("WriteScores: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	rows := readBack(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2 scores)", len(rows))
	}

	wantHeader := []string{
		"destination_country", "hotel_name", "destination_city",
		"bookings", "avg_price", "avg_margin", "avg_discount",
		"price_score", "profit_score", "discount_score", "final_score",
	}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	wantFirst := []string{
		"France", "Hotel Lumière", "Paris",
		"2", "150.00", "0.3000", "0.2000",
		"45.45", "50.00", "100.00", "65.15",
	}
	for i, col := range wantFirst {
		if rows[1][i] != col {
			t.Errorf("row[0][%d] = %q, want %q", i, rows[1][i], col)
		}
	}

	if rows[2][1] != "Sakura Inn" {
		t.Errorf("row[1] hotel = %q, want %q", rows[2][1], "Sakura Inn")
	}
}

func TestCSVWriterEmptyScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	if err := w.WriteScores(nil); err != nil {
		t.Fatalf("WriteScores(nil): %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	rows := readBack(t, path)
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}

func TestCSVWriterCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c", "scores.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter with nested path: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file not created: %v", err)
	}
}
