package services

import (
	"strconv"
	"strings"

	"booking-insights/models"
	"booking-insights/utils"
)

// Column indices (0-based) of the fields consumed from each data line.
const (
	colID            = 0
	colOriginCountry = 6
	colDestCountry   = 9
	colDestCity      = 10
	colRooms         = 15
	colHotel         = 16
	colPrice         = 20
	colDiscount      = 21
	colMargin        = 23

	// minColumns is the smallest field count that still carries every
	// consumed column.
	minColumns = 24
)

// Parser converts raw dataset lines into typed Booking records. Malformed
// lines are dropped, never fatal.
type Parser struct {
	logger  *utils.Logger
	dropped int
}

// NewParser creates a Parser with the given logger.
func NewParser(logger *utils.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse processes data lines in order and returns the bookings that survive.
// Output preserves input line order; no partial record is ever emitted.
func (p *Parser) Parse(lines []string) []*models.Booking {
	p.dropped = 0
	bookings := make([]*models.Booking, 0, len(lines))

	for i, line := range lines {
		b, ok := p.parseLine(line)
		if !ok {
			p.dropped++
			p.logger.Debug("[parser] Dropping data line %d: %.60s", i+1, line)
			continue
		}
		bookings = append(bookings, b)
	}

	p.logger.Info("[parser] Parsed %d bookings from %d lines (dropped %d)",
		len(bookings), len(lines), p.dropped)
	return bookings
}

// Dropped returns how many lines the last Parse call discarded.
func (p *Parser) Dropped() int {
	return p.dropped
}

func (p *Parser) parseLine(line string) (*models.Booking, bool) {
	if strings.TrimSpace(line) == "" {
		return nil, false
	}

	// Naive comma split; quoted fields are not honored, so an embedded
	// comma shifts columns.
	fields := strings.Split(line, ",")
	if len(fields) < minColumns {
		return nil, false
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(fields[colPrice]), 64)
	if err != nil {
		return nil, false
	}

	discount, ok := parseDiscount(fields[colDiscount])
	if !ok {
		return nil, false
	}

	margin, err := strconv.ParseFloat(strings.TrimSpace(fields[colMargin]), 64)
	if err != nil {
		return nil, false
	}

	rooms, err := strconv.Atoi(strings.TrimSpace(fields[colRooms]))
	if err != nil {
		return nil, false
	}

	return &models.Booking{
		ID:            strings.TrimSpace(fields[colID]),
		OriginCountry: strings.TrimSpace(fields[colOriginCountry]),
		DestCountry:   strings.TrimSpace(fields[colDestCountry]),
		DestCity:      strings.TrimSpace(fields[colDestCity]),
		Hotel:         strings.TrimSpace(fields[colHotel]),
		Price:         price,
		Discount:      discount,
		Margin:        margin,
		Rooms:         rooms,
	}, true
}

// parseDiscount reduces a percentage string like "15%" to the fraction 0.15.
func parseDiscount(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, "%", ""))
	pct, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return pct / 100, true
}
