package services

import (
	"sort"

	"booking-insights/models"
	"booking-insights/utils"
)

// InsightService assembles the final report from the parsed bookings and the
// scored groups.
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates an InsightService with the given logger.
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes the ranked table and the three headline answers. groups
// and scores must come from the same aggregation pass, already key-sorted;
// every exact tie resolves toward the lexicographically smaller key.
func (s *InsightService) Generate(
	bookings []*models.Booking,
	groups []*models.GroupMetrics,
	scores []*models.GroupScore,
	rng *models.ScoreRange,
	droppedLines int,
) *models.InsightReport {
	report := &models.InsightReport{
		TotalRecords:      len(bookings),
		DroppedLines:      droppedLines,
		GroupCount:        len(groups),
		Range:             rng,
		BookingsByCountry: make(map[string]int),
	}

	if len(bookings) == 0 || len(scores) == 0 {
		s.logger.Warn("[insights] Nothing to report on")
		return report
	}

	// Rank groups: best final score first, exact ties by key.
	ranked := make([]*models.GroupScore, len(scores))
	copy(ranked, scores)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].FinalScore != ranked[j].FinalScore {
			return ranked[i].FinalScore > ranked[j].FinalScore
		}
		return ranked[i].Metrics.Key < ranked[j].Metrics.Key
	})
	report.Ranked = ranked
	report.BestValue = ranked[0]

	// Most-booked destination country, counted per booking. This key is the
	// country alone, not the grouping key.
	for _, b := range bookings {
		if b.DestCountry != "" {
			report.BookingsByCountry[b.DestCountry]++
		}
	}
	for country, n := range report.BookingsByCountry {
		switch {
		case n > report.TopCountryBookings:
			report.TopCountry = country
			report.TopCountryBookings = n
		case n == report.TopCountryBookings && country < report.TopCountry:
			report.TopCountry = country
		}
	}

	// Simplified profitability estimate: the group's total rooms times the
	// margin of its first booking. Deliberately a single record's margin,
	// not the group average.
	for _, g := range groups {
		estimate := float64(g.TotalRooms) * g.FirstMargin
		if report.MostProfitable == nil || estimate > report.MostProfitableEstimate {
			report.MostProfitable = g
			report.MostProfitableEstimate = estimate
		}
	}

	s.logger.Info("[insights] Report ready: %d groups, top country %s (%d bookings)",
		report.GroupCount, report.TopCountry, report.TopCountryBookings)
	return report
}
