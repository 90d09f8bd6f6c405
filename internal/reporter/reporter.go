package reporter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrikduksin/hyperliquid-playground/internal/candles"
	"github.com/patrikduksin/hyperliquid-playground/internal/config"
	"github.com/patrikduksin/hyperliquid-playground/internal/hyperliquid"
	"github.com/patrikduksin/hyperliquid-playground/internal/logger"
	"github.com/patrikduksin/hyperliquid-playground/internal/model"
	"github.com/patrikduksin/hyperliquid-playground/internal/report"
	"github.com/patrikduksin/hyperliquid-playground/internal/stats"
)

type CandleFetcher interface {
	CandleSnapshot(ctx context.Context, params model.CandleSnapshotParams) (hyperliquid.Snapshot, error)
}

// CandleStatsReporter runs one candleSnapshot query and prints its statistics.
type CandleStatsReporter struct {
	info   CandleFetcher
	report *report.Reporter
	cfg    config.QueryConfig

	logger logger.Logger
}

func New(info CandleFetcher, rep *report.Reporter, cfg config.QueryConfig, logger logger.Logger) *CandleStatsReporter {
	return &CandleStatsReporter{
		info:   info,
		report: rep,
		cfg:    cfg,
		logger: logger,
	}
}

func (r *CandleStatsReporter) Query(now time.Time) model.CandleSnapshotParams {
	return model.CandleSnapshotParams{
		Coin:      r.cfg.Coin,
		Interval:  r.cfg.Interval,
		StartTime: r.cfg.StartTime,
		EndTime:   now.UnixMilli(),
	}
}

// Run queries candles up to now and reports them. A non-2xx answer comes back
// as hyperliquid.ErrTransport, a bad body as candles.ErrInvalidFormat; nothing
// but the latency is printed in both cases.
func (r *CandleStatsReporter) Run(ctx context.Context, now time.Time) error {
	q := r.Query(now)
	r.logger.Debugf("requesting %s %s candles from %d to %d", q.Coin, q.Interval, q.StartTime, q.EndTime)

	snap, err := r.info.CandleSnapshot(ctx, q)
	if err != nil && !errors.Is(err, hyperliquid.ErrTransport) {
		return fmt.Errorf("%w: can't fetch candles", err)
	}
	if err := r.report.Latency(snap.Latency); err != nil {
		return fmt.Errorf("%w: can't write report", err)
	}
	if err != nil {
		return err
	}

	series, err := candles.Parse(snap.Body)
	if err != nil {
		return fmt.Errorf("%w, body: %s", err, hyperliquid.Preview(snap.Body))
	}

	st, err := stats.Compute(series, now)
	r.logger.Debugf("computed statistics of %d candles at %s", st.Count, st.GeneratedAt.Format(time.RFC3339))
	if errors.Is(err, stats.ErrUndetermined) {
		r.logger.Warnf("%s: %d candles without parsable prices", err, st.Count)
	}

	if err := r.report.Statistics(q, st); err != nil {
		return fmt.Errorf("%w: can't write report", err)
	}
	return nil
}
