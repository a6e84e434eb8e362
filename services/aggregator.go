package services

import (
	"sort"

	"booking-insights/models"
	"booking-insights/utils"
)

// accumulator collects running sums for one hotel-location group.
type accumulator struct {
	first       *models.Booking
	count       int
	sumPrice    float64
	sumMargin   float64
	sumDiscount float64
	rooms       int
}

// Aggregator partitions bookings by composite key (destination country +
// hotel + destination city) and computes per-group summary statistics.
type Aggregator struct {
	logger *utils.Logger
}

// NewAggregator creates an Aggregator with the given logger.
func NewAggregator(logger *utils.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Aggregate builds one GroupMetrics per unique composite key in a single
// forward pass. Bookings whose three key fields are all empty are skipped;
// every other booking lands in exactly one group. The result is sorted by
// key so downstream tie-breaks are deterministic.
func (a *Aggregator) Aggregate(bookings []*models.Booking) []*models.GroupMetrics {
	groups := make(map[string]*accumulator)

	for _, b := range bookings {
		if b.DestCountry == "" && b.Hotel == "" && b.DestCity == "" {
			a.logger.Debug("[aggregator] Skipping booking %q with empty group key", b.ID)
			continue
		}

		key := b.GroupKey()
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{first: b}
			groups[key] = acc
		}
		acc.count++
		acc.sumPrice += b.Price
		acc.sumMargin += b.Margin
		acc.sumDiscount += b.Discount
		acc.rooms += b.Rooms
	}

	metrics := make([]*models.GroupMetrics, 0, len(groups))
	for key, acc := range groups {
		n := float64(acc.count)
		metrics = append(metrics, &models.GroupMetrics{
			Key:         key,
			DestCountry: acc.first.DestCountry,
			Hotel:       acc.first.Hotel,
			DestCity:    acc.first.DestCity,
			Count:       acc.count,
			AvgPrice:    acc.sumPrice / n,
			AvgMargin:   acc.sumMargin / n,
			AvgDiscount: acc.sumDiscount / n,
			TotalRooms:  acc.rooms,
			FirstMargin: acc.first.Margin,
		})
	}

	// Map iteration order is unspecified; sort by key for reproducible output.
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].Key < metrics[j].Key
	})

	a.logger.Info("[aggregator] Grouped %d bookings into %d hotel locations",
		len(bookings), len(metrics))
	return metrics
}
