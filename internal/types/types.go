package types

const (
	Buy  Action = "BUY"
	Sell Action = "SELL"
)

type Action string

// Candle is one intraday price observation. Immutable once loaded.
type Candle struct {
	Hour   int
	Minute int
	Open   float64
	Close  float64
}

// MinuteOfDay returns the candle's time of day in minutes since midnight,
// used for trading-window comparisons and intraday ordering.
func (c Candle) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

// TradingDay is the filtered, ordered candle sequence for one calendar date.
// Date is in YYYYMMDD format.
type TradingDay struct {
	Date    string
	Candles []Candle
}

// Dataset is the ordered series of trading days for one symbol, dates
// ascending. Built once, read-only afterwards, safe to share across
// concurrent backtest runs.
type Dataset []TradingDay

// TradeEvent records one executed transaction. Volume and Cash are the
// post-transaction holdings; MarketValue is the portfolio value immediately
// before the transaction.
type TradeEvent struct {
	Date        string
	Hour        int
	Minute      int
	Action      Action
	Shares      float64
	Price       float64
	Volume      float64
	Cash        float64
	MarketValue float64
}
