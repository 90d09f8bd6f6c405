package candles

import (
	"errors"
	"fmt"

	"github.com/patrikduksin/hyperliquid-playground/internal/model"
	"github.com/tidwall/gjson"
)

// ErrInvalidFormat covers both a malformed payload and an empty candle list.
var ErrInvalidFormat = errors.New("unexpected response format or no candles")

// Series is a non-empty list of candles in response order. The only way to
// get one is Parse.
type Series struct {
	candles []model.Candle
}

func (s Series) Len() int {
	return len(s.candles)
}

func (s Series) Candles() []model.Candle {
	return s.candles
}

// Parse validates a candleSnapshot body: a JSON array with at least one
// element, every element an object carrying a numeric "t".
func Parse(body []byte) (Series, error) {
	if !gjson.ValidBytes(body) {
		return Series{}, fmt.Errorf("%w: body is not json", ErrInvalidFormat)
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return Series{}, fmt.Errorf("%w: body is not an array", ErrInvalidFormat)
	}

	items := root.Array()
	if len(items) == 0 {
		return Series{}, fmt.Errorf("%w: empty array", ErrInvalidFormat)
	}

	candles := make([]model.Candle, 0, len(items))
	for i, item := range items {
		c, err := parseCandle(item)
		if err != nil {
			return Series{}, fmt.Errorf("%w: candle %d: %s", ErrInvalidFormat, i, err)
		}
		candles = append(candles, c)
	}

	return Series{candles: candles}, nil
}

func parseCandle(v gjson.Result) (model.Candle, error) {
	if !v.IsObject() {
		return model.Candle{}, fmt.Errorf("not an object")
	}

	t := v.Get("t")
	if t.Type != gjson.Number {
		return model.Candle{}, fmt.Errorf("missing open time")
	}

	return model.Candle{
		Time:      t.Int(),
		CloseTime: v.Get("T").Int(),
		Symbol:    v.Get("s").String(),
		Interval:  v.Get("i").String(),
		Open:      price(v.Get("o")),
		Close:     price(v.Get("c")),
		High:      price(v.Get("h")),
		Low:       price(v.Get("l")),
		Volume:    price(v.Get("v")),
		Trades:    v.Get("n").Int(),
	}, nil
}

// price keeps numbers in their wire spelling so "9.0" and 9.0 read the same.
func price(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	default:
		return ""
	}
}
