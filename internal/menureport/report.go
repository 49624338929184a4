// Package menureport summarizes a menu for the people maintaining it: price
// statistics per category and a spreadsheet copy of the whole menu.
package menureport

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/montanaflynn/stats"
	"github.com/talkincode/fudofusion/internal/domain"
)

// CategoryStats describes the prices within one category
type CategoryStats struct {
	Category string
	Count    int
	Min      float64
	Max      float64
	Mean     float64
	Median   float64
}

// Summarize computes price statistics per normalized category, in first-seen order
func Summarize(items []domain.MenuItem) ([]CategoryStats, error) {
	cm := domain.NewCategoryMenu(items)
	out := make([]CategoryStats, 0, len(cm.Categories()))
	for _, category := range cm.Categories() {
		var prices stats.Float64Data
		for _, item := range cm.Items(category) {
			f, _ := item.Price.Float64()
			prices = append(prices, f)
		}

		cs := CategoryStats{Category: category, Count: len(prices)}
		var err error
		if cs.Min, err = prices.Min(); err != nil {
			return nil, fmt.Errorf("%s: %w", category, err)
		}
		if cs.Max, err = prices.Max(); err != nil {
			return nil, fmt.Errorf("%s: %w", category, err)
		}
		if cs.Mean, err = prices.Mean(); err != nil {
			return nil, fmt.Errorf("%s: %w", category, err)
		}
		if cs.Median, err = prices.Median(); err != nil {
			return nil, fmt.Errorf("%s: %w", category, err)
		}
		out = append(out, cs)
	}
	return out, nil
}

// WriteReport prints the statistics as an aligned table
func WriteReport(w io.Writer, rows []CategoryStats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tITEMS\tMIN\tMAX\tMEAN\tMEDIAN")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\n", r.Category, r.Count, r.Min, r.Max, r.Mean, r.Median)
	}
	return tw.Flush()
}
