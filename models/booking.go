package models

// Booking is one parsed row of the bookings dataset. It is created once by
// the parser and never mutated afterwards.
type Booking struct {
	ID            string
	OriginCountry string
	DestCountry   string
	DestCity      string
	Hotel         string
	Price         float64
	Discount      float64 // fraction, e.g. "15%" is stored as 0.15
	Margin        float64
	Rooms         int
}

// KeySeparator joins the three grouping fields into a composite key.
const KeySeparator = "|"

// GroupKey identifies the hotel-location group this booking belongs to.
// Two bookings share a group only on exact string equality of destination
// country, hotel name and destination city.
func (b *Booking) GroupKey() string {
	return b.DestCountry + KeySeparator + b.Hotel + KeySeparator + b.DestCity
}

// NetPrice is the booking price after the discount is applied.
func (b *Booking) NetPrice() float64 {
	return b.Price * (1 - b.Discount)
}

// Profit is the booking price multiplied by the profit margin.
func (b *Booking) Profit() float64 {
	return b.Price * b.Margin
}

// GroupMetrics holds the per-group summary statistics computed by the
// aggregator. Averages keep full float precision; rounding happens only at
// render time.
type GroupMetrics struct {
	Key         string
	DestCountry string
	Hotel       string
	DestCity    string

	Count       int
	AvgPrice    float64
	AvgMargin   float64
	AvgDiscount float64

	TotalRooms  int
	FirstMargin float64 // margin of the first booking seen for this group
}
