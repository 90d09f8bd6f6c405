package model

import (
	"math"
	"time"
)

type DateRange struct {
	Min int64
	Max int64
}

// PriceExtreme is the running extreme of one side. Found is false while the
// infinite starting value was never replaced.
type PriceExtreme struct {
	Price float64
	Time  int64
	Found bool
}

type PriceExtremes struct {
	Min PriceExtreme // lowest low
	Max PriceExtreme // highest high
}

// NewPriceExtremes starts the lowest low at +Inf and the highest high at -Inf.
func NewPriceExtremes() PriceExtremes {
	return PriceExtremes{
		Min: PriceExtreme{Price: math.Inf(1)},
		Max: PriceExtreme{Price: math.Inf(-1)},
	}
}

func (p PriceExtremes) Determined() bool {
	return p.Min.Found || p.Max.Found
}

type Statistics struct {
	Count       int
	Range       DateRange
	Prices      PriceExtremes
	GeneratedAt time.Time
}
