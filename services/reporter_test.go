package services

import "testing"

func TestCenter(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"abc", 6, " abc  "},
		{"abcdef", 4, "abcdef"},
		{"", 4, "    "},
	}

	for _, tt := range tests {
		if got := center(tt.s, tt.width); got != tt.want {
			t.Errorf("center(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"a very long hotel name", 10, "a very ..."},
		{"Hôtel Lumière et Résidence", 12, "Hôtel Lum..."},
	}

	for _, tt := range tests {
		if got := truncate(tt.s, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
		}
	}
}

func TestClampRows(t *testing.T) {
	tests := []struct {
		n, limit, want int
	}{
		{-3, 4, 0},
		{0, 4, 0},
		{2, 4, 2},
		{4, 4, 4},
		{50, 4, 4},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := clampRows(tt.n, tt.limit); got != tt.want {
			t.Errorf("clampRows(%d, %d) = %d, want %d", tt.n, tt.limit, got, tt.want)
		}
	}
}

func TestPrintReportRowCountsOutOfRange(t *testing.T) {
	// TOP_ROWS and BOTTOM_ROWS reach the reporter unvalidated; rendering
	// must tolerate any configured value without slicing out of range.
	r := generateReport(t, sampleBookings())

	counts := []struct{ top, bottom int }{
		{-3, 5},
		{10, -2},
		{0, 0},
		{50, 50},
	}

	for _, c := range counts {
		PrintReport(r, c.top, c.bottom)
	}
}
