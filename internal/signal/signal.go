// Package signal holds the intraday market classification predicates.
//
// All predicates are pure and compare exactly two observation prices via a
// percentage multiplier centered at 100 (102 = +2%). The candle offsets are
// fixed for the canonical 13-candle trading day (hourly candles 09:30 to
// 15:30): index 0 is 09:30, index 1 is 10:00, len-4 is 14:00, len-2 is 15:00,
// len-1 is 15:30. series.Build guarantees at least 13 candles per day; on a
// longer day these offsets silently address different times.
package signal

import "github.com/jwtly10/lazytrader/internal/types"

// MorningBearish reports whether the market opened down: the 10:00 open is
// below the 09:30 open scaled by pct.
func MorningBearish(today []types.Candle, pct float64) bool {
	return today[1].Open < today[0].Open*pct/100.0
}

// MorningBullish reports whether the market opened up: the 10:00 open is
// above the 09:30 open scaled by pct.
func MorningBullish(today []types.Candle, pct float64) bool {
	return today[1].Open > today[0].Open*pct/100.0
}

// YesterdayAfternoonBearish reports whether yesterday's market faded into the
// close: the final close is below the 14:00 open scaled by pct.
func YesterdayAfternoonBearish(yesterday []types.Candle, pct float64) bool {
	n := len(yesterday)
	return yesterday[n-1].Close < yesterday[n-4].Open*pct/100.0
}

// AfternoonBullish reports whether the afternoon rallied: the 15:00 open is
// above the 14:00 open scaled by pct.
func AfternoonBullish(today []types.Candle, pct float64) bool {
	n := len(today)
	return today[n-2].Open > today[n-4].Open*pct/100.0
}
