package hyperliquid

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/patrikduksin/hyperliquid-playground/internal/config"
	"github.com/patrikduksin/hyperliquid-playground/internal/logger"
	"github.com/patrikduksin/hyperliquid-playground/internal/model"
	"resty.dev/v3"
)

const (
	_infoURL = "/info"

	_bodyPreviewLimit = 512
)

// ErrTransport matches every non-2xx answer of the info endpoint.
var ErrTransport = errors.New("failed to fetch candle data")

type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", ErrTransport, e.Status)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrTransport
}

// Snapshot is the raw answer of a candleSnapshot query, the body shape is
// not checked here.
type Snapshot struct {
	Body    []byte
	Latency time.Duration
}

type InfoService struct {
	c   *resty.Client
	cfg config.HyperliquidConfig

	logger logger.Logger
}

func NewInfoService(cfg config.HyperliquidConfig, logger logger.Logger) *InfoService {
	client := resty.New().
		SetLogger(logger).
		SetBaseURL(cfg.Address).
		SetHeader("Content-Type", "application/json").
		AddContentTypeEncoder("json", encodeJSON)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &InfoService{
		c:      client,
		cfg:    cfg,
		logger: logger,
	}
}

func encodeJSON(w io.Writer, v any) error {
	return sonic.ConfigStd.NewEncoder(w).Encode(v)
}

func (s *InfoService) GetConfig() config.HyperliquidConfig {
	return s.cfg
}

func (s *InfoService) Close() error {
	return s.c.Close()
}

// curl -X POST https://api.hyperliquid.xyz/info -H "Content-Type: application/json" -d '{"type":"candleSnapshot","req":{"coin":"BTC","interval":"1d","startTime":0,"endTime":1760000000000}}'
func (s *InfoService) CandleSnapshot(ctx context.Context, params model.CandleSnapshotParams) (Snapshot, error) {
	req := s.c.R().
		SetBody(model.CandleSnapshotRequest{
			Type: model.CandleSnapshotType,
			Req:  params,
		}).
		SetContext(ctx)

	resp, err := req.Post(_infoURL)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: can't send candle snapshot request", err)
	}
	defer resp.Body.Close()

	body := resp.Bytes()
	snapshot := Snapshot{
		Body:    body,
		Latency: resp.Duration(),
	}

	s.logger.Debugf("got response %s status: %s, %s, %d bytes", resp.Request.URL, resp.Status(), resp.Duration(), len(body))

	if !resp.IsSuccess() {
		return snapshot, &StatusError{
			Code:   resp.StatusCode(),
			Status: resp.Status(),
			Body:   Preview(body),
		}
	}

	return snapshot, nil
}

// Preview cuts a response body down to something loggable, never inside a
// UTF-8 sequence.
func Preview(body []byte) string {
	if len(body) <= _bodyPreviewLimit {
		return string(body)
	}
	cut := _bodyPreviewLimit
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return string(body[:cut]) + "..."
}
