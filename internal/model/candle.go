package model

// Candle is one bar of a candleSnapshot response. Prices are kept as the
// decimal text the provider sent.
type Candle struct {
	Time      int64  `json:"t"`
	CloseTime int64  `json:"T"`
	Symbol    string `json:"s"`
	Interval  string `json:"i"`
	Open      string `json:"o"`
	Close     string `json:"c"`
	High      string `json:"h"`
	Low       string `json:"l"`
	Volume    string `json:"v"`
	Trades    int64  `json:"n"`
}

const CandleSnapshotType = "candleSnapshot"

type CandleSnapshotParams struct {
	Coin      string `json:"coin"`
	Interval  string `json:"interval"`
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime"`
}

type CandleSnapshotRequest struct {
	Type string               `json:"type"`
	Req  CandleSnapshotParams `json:"req"`
}
