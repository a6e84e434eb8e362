package services

import (
	"booking-insights/models"
	"booking-insights/utils"
)

// Scorer normalizes each group's averages against the global extrema and
// produces a composite value score per group.
type Scorer struct {
	logger *utils.Logger
}

// NewScorer creates a Scorer with the given logger.
func NewScorer(logger *utils.Logger) *Scorer {
	return &Scorer{logger: logger}
}

// Score computes the global min/max of each averaged metric, then one
// GroupScore per group. Input order is preserved. Empty input returns
// (nil, nil); callers stop the pipeline before scoring in that case.
func (s *Scorer) Score(groups []*models.GroupMetrics) ([]*models.GroupScore, *models.ScoreRange) {
	if len(groups) == 0 {
		return nil, nil
	}

	rng := scoreRange(groups)

	scores := make([]*models.GroupScore, 0, len(groups))
	for _, g := range groups {
		sc := &models.GroupScore{
			Metrics:       g,
			PriceScore:    invertedScore(g.AvgPrice, rng.MinAvgPrice, rng.MaxAvgPrice),
			ProfitScore:   invertedScore(g.AvgMargin, rng.MinAvgMargin, rng.MaxAvgMargin),
			DiscountScore: directScore(g.AvgDiscount, rng.MinAvgDiscount, rng.MaxAvgDiscount),
		}
		sc.FinalScore = (sc.PriceScore + sc.ProfitScore + sc.DiscountScore) / 3
		scores = append(scores, sc)
	}

	s.logger.Info("[scorer] Scored %d groups (price %.2f..%.2f, margin %.4f..%.4f, discount %.4f..%.4f)",
		len(scores), rng.MinAvgPrice, rng.MaxAvgPrice,
		rng.MinAvgMargin, rng.MaxAvgMargin,
		rng.MinAvgDiscount, rng.MaxAvgDiscount)
	return scores, rng
}

// scoreRange finds the global extrema of the averaged metrics across groups.
func scoreRange(groups []*models.GroupMetrics) *models.ScoreRange {
	first := groups[0]
	rng := &models.ScoreRange{
		MinAvgPrice:    first.AvgPrice,
		MaxAvgPrice:    first.AvgPrice,
		MinAvgMargin:   first.AvgMargin,
		MaxAvgMargin:   first.AvgMargin,
		MinAvgDiscount: first.AvgDiscount,
		MaxAvgDiscount: first.AvgDiscount,
	}

	for _, g := range groups[1:] {
		if g.AvgPrice < rng.MinAvgPrice {
			rng.MinAvgPrice = g.AvgPrice
		}
		if g.AvgPrice > rng.MaxAvgPrice {
			rng.MaxAvgPrice = g.AvgPrice
		}
		if g.AvgMargin < rng.MinAvgMargin {
			rng.MinAvgMargin = g.AvgMargin
		}
		if g.AvgMargin > rng.MaxAvgMargin {
			rng.MaxAvgMargin = g.AvgMargin
		}
		if g.AvgDiscount < rng.MinAvgDiscount {
			rng.MinAvgDiscount = g.AvgDiscount
		}
		if g.AvgDiscount > rng.MaxAvgDiscount {
			rng.MaxAvgDiscount = g.AvgDiscount
		}
	}

	return rng
}

// invertedScore rates lower raw values higher: the cheapest group scores 100.
// A degenerate range (all groups equal) awards full marks to everyone.
func invertedScore(v, minVal, maxVal float64) float64 {
	if maxVal == minVal {
		return 100.0
	}
	return (1 - (v-minVal)/(maxVal-minVal)) * 100.0
}

// directScore rates higher raw values higher: the largest discount scores 100.
func directScore(v, minVal, maxVal float64) float64 {
	if maxVal == minVal {
		return 100.0
	}
	return ((v - minVal) / (maxVal - minVal)) * 100.0
}
