package stats

import (
	"errors"
	"time"

	"github.com/patrikduksin/hyperliquid-playground/internal/candles"
	"github.com/patrikduksin/hyperliquid-playground/internal/model"
	"github.com/patrikduksin/hyperliquid-playground/internal/tools"
)

// ErrUndetermined means no candle had a parsable low nor a parsable high.
var ErrUndetermined = errors.New("could not determine min/max prices")

func DateRange(s candles.Series) model.DateRange {
	cs := s.Candles()
	if len(cs) == 0 {
		return model.DateRange{}
	}
	r := model.DateRange{Min: cs[0].Time, Max: cs[0].Time}
	for _, c := range cs[1:] {
		r.Min = min(r.Min, c.Time)
		r.Max = max(r.Max, c.Time)
	}
	return r
}

// PriceExtremes scans candles once in the given order. A side whose text has
// no numeric prefix is skipped for that candle. Comparisons are strict, so
// on ties the first candle keeps the record, and a low of +Inf or a high of
// -Inf never replaces the starting value.
func PriceExtremes(cs []model.Candle) model.PriceExtremes {
	p := model.NewPriceExtremes()
	for _, c := range cs {
		if low, ok := tools.ParsePrice(c.Low); ok && low < p.Min.Price {
			p.Min = model.PriceExtreme{Price: low, Time: c.Time, Found: true}
		}
		if high, ok := tools.ParsePrice(c.High); ok && high > p.Max.Price {
			p.Max = model.PriceExtreme{Price: high, Time: c.Time, Found: true}
		}
	}
	return p
}

// Compute derives the statistics of s. now is recorded, never read from the
// clock here. ErrUndetermined comes back together with count and range.
func Compute(s candles.Series, now time.Time) (model.Statistics, error) {
	st := model.Statistics{
		Count:       s.Len(),
		Range:       DateRange(s),
		Prices:      PriceExtremes(s.Candles()),
		GeneratedAt: now,
	}
	if !st.Prices.Determined() {
		return st, ErrUndetermined
	}
	return st, nil
}
