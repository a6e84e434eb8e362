package dataset

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/text/encoding/charmap"

	"booking-insights/utils"
)

// Reader loads the raw bookings dataset from disk. The file is ISO-8859-1
// encoded and its first line is a column header.
type Reader struct {
	path   string
	logger *utils.Logger
}

// NewReader creates a Reader for the dataset at the given path.
func NewReader(path string, logger *utils.Logger) *Reader {
	return &Reader{path: path, logger: logger}
}

// Lines reads the whole file into memory and returns the data lines in file
// order, header excluded. A missing or unreadable file is the only error;
// an empty file just yields no lines.
func (r *Reader) Lines() ([]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %q: %w", r.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(f))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read %q: %w", r.path, err)
	}

	if len(lines) == 0 {
		r.logger.Warn("[dataset] %s contains no lines", r.path)
		return nil, nil
	}

	data := lines[1:]
	r.logger.Info("[dataset] Loaded %d data lines from %s", len(data), r.path)
	return data, nil
}
