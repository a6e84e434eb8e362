package models

import "testing"

func TestBookingDerivedValues(t *testing.T) {
	tests := []struct {
		price, discount, margin float64
		wantNet, wantProfit     float64
	}{
		{100, 0.25, 0.5, 75, 50},
		{200, 0, 0.25, 200, 50},
		{80, 1, 0.5, 0, 40},
		{120, 0.5, -0.5, 60, -60},
	}

	for _, tt := range tests {
		b := &Booking{Price: tt.price, Discount: tt.discount, Margin: tt.margin}
		if got := b.NetPrice(); got != tt.wantNet {
			t.Errorf("NetPrice() with price %v, discount %v = %v, want %v",
				tt.price, tt.discount, got, tt.wantNet)
		}
		if got := b.Profit(); got != tt.wantProfit {
			t.Errorf("Profit() with price %v, margin %v = %v, want %v",
				tt.price, tt.margin, got, tt.wantProfit)
		}
	}
}

func TestBookingGroupKey(t *testing.T) {
	b := &Booking{DestCountry: "France", Hotel: "Hotel Lumière", DestCity: "Paris"}
	want := "France|Hotel Lumière|Paris"
	if got := b.GroupKey(); got != want {
		t.Errorf("GroupKey() = %q, want %q", got, want)
	}
}
