package models

// ScoreRange holds the global min/max of each averaged metric across all
// groups. The scorer normalizes against these extrema.
type ScoreRange struct {
	MinAvgPrice    float64
	MaxAvgPrice    float64
	MinAvgMargin   float64
	MaxAvgMargin   float64
	MinAvgDiscount float64
	MaxAvgDiscount float64
}

// GroupScore is a group's normalized standing against the global extrema.
// Price and profit are inverted (cheaper/lower margin scores higher);
// discount is direct. All scores live in [0,100].
type GroupScore struct {
	Metrics *GroupMetrics

	PriceScore    float64
	ProfitScore   float64
	DiscountScore float64
	FinalScore    float64 // unweighted mean of the three component scores
}

// InsightReport holds everything the console reporter renders.
type InsightReport struct {
	TotalRecords int
	DroppedLines int
	GroupCount   int

	Range  *ScoreRange
	Ranked []*GroupScore // descending final score, ties by ascending key

	BookingsByCountry  map[string]int
	TopCountry         string
	TopCountryBookings int

	BestValue *GroupScore

	MostProfitable         *GroupMetrics
	MostProfitableEstimate float64 // total rooms x first booking's margin
}
