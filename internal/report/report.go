package report

import (
	"fmt"
	"io"
	"time"

	"github.com/patrikduksin/hyperliquid-playground/internal/model"
	"github.com/patrikduksin/hyperliquid-playground/internal/tools"
)

const _notAvailable = "N/A"

type Reporter struct {
	out    io.Writer
	loc    *time.Location
	layout string
}

func NewReporter(out io.Writer, loc *time.Location, layout string) *Reporter {
	if loc == nil {
		loc = time.Local
	}
	return &Reporter{
		out:    out,
		loc:    loc,
		layout: layout,
	}
}

func (r *Reporter) FormatTime(ms int64) string {
	return time.UnixMilli(ms).In(r.loc).Format(r.layout)
}

func (r *Reporter) Latency(d time.Duration) error {
	_, err := fmt.Fprintf(r.out, "API request took %v ms\n", float64(d)/float64(time.Millisecond))
	return err
}

// Statistics prints count, date range and price extremes. A side that was never
// found is printed as N/A.
func (r *Reporter) Statistics(q model.CandleSnapshotParams, st model.Statistics) error {
	lines := []string{
		fmt.Sprintf("Number of available %s candles for %s: %d", q.Interval, q.Coin, st.Count),
		fmt.Sprintf("Candle date range: %s - %s", r.FormatTime(st.Range.Min), r.FormatTime(st.Range.Max)),
	}
	if !st.Prices.Determined() {
		lines = append(lines, "Could not determine min/max prices.")
	} else {
		lines = append(lines,
			fmt.Sprintf("Min price: %s", r.extreme(st.Prices.Min)),
			fmt.Sprintf("Max price: %s", r.extreme(st.Prices.Max)),
		)
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(r.out, l); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) extreme(e model.PriceExtreme) string {
	if !e.Found {
		return _notAvailable + " at " + _notAvailable
	}
	return fmt.Sprintf("%s at %s", tools.FormatPrice(e.Price), r.FormatTime(e.Time))
}
