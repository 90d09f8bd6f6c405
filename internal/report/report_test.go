package report

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/patrikduksin/hyperliquid-playground/internal/model"
	"github.com/stretchr/testify/require"
)

const _layout = "2006-01-02 15:04:05"

var _query = model.CandleSnapshotParams{Coin: "BTC", Interval: "1d"}

func TestReporter_Statistics(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, time.UTC, _layout)

	err := r.Statistics(_query, model.Statistics{
		Count: 3,
		Range: model.DateRange{Min: 1000, Max: 3000},
		Prices: model.PriceExtremes{
			Min: model.PriceExtreme{Price: 9.0, Time: 2000, Found: true},
			Max: model.PriceExtreme{Price: 15.0, Time: 2000, Found: true},
		},
	})
	require.NoError(t, err)
	require.Equal(t, ""+
		"Number of available 1d candles for BTC: 3\n"+
		"Candle date range: 1970-01-01 00:00:01 - 1970-01-01 00:00:03\n"+
		"Min price: 9 at 1970-01-01 00:00:02\n"+
		"Max price: 15 at 1970-01-01 00:00:02\n", buf.String())
}

func TestReporter_MissingSide(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, time.UTC, _layout)

	err := r.Statistics(_query, model.Statistics{
		Count: 1,
		Range: model.DateRange{Min: 0, Max: 0},
		Prices: model.PriceExtremes{
			Max: model.PriceExtreme{Price: 64350.5, Time: 0, Found: true},
		},
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Min price: N/A at N/A\n")
	require.Contains(t, buf.String(), "Max price: 64350.5 at 1970-01-01 00:00:00\n")
}

func TestReporter_EpochTimestamp(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, time.UTC, _layout)

	err := r.Statistics(_query, model.Statistics{
		Count: 1,
		Prices: model.PriceExtremes{
			Min: model.PriceExtreme{Price: 1, Time: 0, Found: true},
			Max: model.PriceExtreme{Price: math.Inf(1), Time: 0, Found: true},
		},
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Min price: 1 at 1970-01-01 00:00:00\n")
	require.Contains(t, buf.String(), "Max price: Infinity at 1970-01-01 00:00:00\n")
}

func TestReporter_Undetermined(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, time.UTC, _layout)

	require.NoError(t, r.Statistics(_query, model.Statistics{Count: 2, Range: model.DateRange{Min: 0, Max: 86400000}}))
	require.Contains(t, buf.String(), "Could not determine min/max prices.\n")
	require.NotContains(t, buf.String(), "Min price")
}

func TestReporter_Latency(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, time.UTC, _layout)

	require.NoError(t, r.Latency(1500*time.Microsecond))
	require.Equal(t, "API request took 1.5 ms\n", buf.String())
}

func TestReporter_FormatTimeLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	r := NewReporter(&bytes.Buffer{}, loc, "1/2/2006, 3:04:05 PM")

	require.Equal(t, "1/1/1970, 3:00:00 AM", r.FormatTime(0))
	require.Equal(t, "10/16/2025, 3:00:00 PM", r.FormatTime(time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC).UnixMilli()))
}
