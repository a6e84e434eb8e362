package services

import (
	"fmt"
	"strings"

	"booking-insights/models"
)

const reportWidth = 104

// PrintReport renders the insight report to the terminal: overview,
// normalization ranges, the ranked tables and the three headline answers.
// topRows/bottomRows control the table sizes. Formatting only; no numbers
// are computed here beyond display rounding.
func PrintReport(r *models.InsightReport, topRows, bottomRows int) {
	sep := strings.Repeat("═", reportWidth)
	thin := strings.Repeat("─", reportWidth)

	fmt.Printf("\n╔%s╗\n", sep)
	fmt.Printf("║%s║\n", center("HOTEL BOOKING INSIGHTS", reportWidth))
	fmt.Printf("╚%s╝\n\n", sep)

	// Overview
	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Valid bookings loaded : \033[1m%d\033[0m\n", r.TotalRecords)
	fmt.Printf("  Lines dropped         : %d\n", r.DroppedLines)
	fmt.Printf("  Hotel locations       : %d\n", r.GroupCount)
	fmt.Println()

	if r.Range != nil {
		fmt.Printf("\033[1;33m  Normalization Ranges\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  Avg price    : %10.2f .. %10.2f\n", r.Range.MinAvgPrice, r.Range.MaxAvgPrice)
		fmt.Printf("  Avg margin   : %10.4f .. %10.4f\n", r.Range.MinAvgMargin, r.Range.MaxAvgMargin)
		fmt.Printf("  Avg discount : %10.4f .. %10.4f\n", r.Range.MinAvgDiscount, r.Range.MaxAvgDiscount)
		fmt.Println()
	}

	if top := clampRows(topRows, len(r.Ranked)); top > 0 {
		fmt.Printf("\033[1;33m  Top %d Hotel Locations by Value Score\033[0m\n", top)
		fmt.Printf("  %s\n", thin)
		printScoreHeader()
		for i, sc := range r.Ranked[:top] {
			printScoreRow(i+1, sc)
		}
		fmt.Println()
	}

	if bottom := clampRows(bottomRows, len(r.Ranked)); bottom > 0 {
		fmt.Printf("\033[1;33m  Bottom %d Hotel Locations by Value Score\033[0m\n", bottom)
		fmt.Printf("  %s\n", thin)
		printScoreHeader()
		for i, sc := range r.Ranked[len(r.Ranked)-bottom:] {
			printScoreRow(len(r.Ranked)-bottom+i+1, sc)
		}
		fmt.Println()
	}

	// Headline answers
	fmt.Printf("\033[1;33m  Headlines\033[0m\n")
	fmt.Printf("  %s\n", thin)

	if r.TopCountry != "" {
		fmt.Printf("  Most booked destination : \033[1;32m%s\033[0m (%d bookings)\n",
			r.TopCountry, r.TopCountryBookings)
	} else {
		fmt.Printf("  Most booked destination : no country data\n")
	}

	if r.BestValue != nil {
		m := r.BestValue.Metrics
		fmt.Printf("  Best overall value      : \033[1;32m%s\033[0m (%s, %s)\n",
			m.Hotel, m.DestCity, m.DestCountry)
		fmt.Printf("      price %.2f | profit %.2f | discount %.2f | final \033[1m%.2f\033[0m\n",
			r.BestValue.PriceScore, r.BestValue.ProfitScore,
			r.BestValue.DiscountScore, r.BestValue.FinalScore)
	}

	if r.MostProfitable != nil {
		fmt.Printf("  Most profitable hotel   : \033[1;32m%s\033[0m (%s, %s)\n",
			r.MostProfitable.Hotel, r.MostProfitable.DestCity, r.MostProfitable.DestCountry)
		fmt.Printf("      rooms x margin estimate: \033[1m%.2f\033[0m (%d rooms)\n",
			r.MostProfitableEstimate, r.MostProfitable.TotalRooms)
	}

	fmt.Printf("\n%s\n\n", strings.Repeat("═", reportWidth+2))
}

func printScoreHeader() {
	fmt.Printf("  %-4s %-44s %8s %10s %7s %7s %7s %7s\n",
		"#", "Hotel (City, Country)", "Bookings", "AvgPrice", "Price", "Profit", "Disc", "Final")
}

func printScoreRow(rank int, sc *models.GroupScore) {
	m := sc.Metrics
	label := fmt.Sprintf("%s (%s, %s)", m.Hotel, m.DestCity, m.DestCountry)
	fmt.Printf("  %-4d %-44s %8d %10.2f %7.2f %7.2f %7.2f %7.2f\n",
		rank, truncate(label, 44), m.Count, m.AvgPrice,
		sc.PriceScore, sc.ProfitScore, sc.DiscountScore, sc.FinalScore)
}

// clampRows bounds a configured table size to [0, limit]. TOP_ROWS and
// BOTTOM_ROWS arrive unvalidated from the environment; a zero or negative
// count renders no table.
func clampRows(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
