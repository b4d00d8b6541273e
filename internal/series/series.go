// Package series builds the ordered per-day candle dataset consumed by the
// backtest engine from raw, unordered per-date candle records.
package series

import (
	"log/slog"
	"sort"

	"github.com/jwtly10/lazytrader/internal/types"
)

const (
	// Trading window bounds, minutes since midnight, inclusive.
	windowOpen  = 9*60 + 30
	windowClose = 15*60 + 30

	// MinCandlesPerDay is the minimum window coverage for a date to count as
	// a trading day. Shorter days (half days, partial data) are dropped, not
	// treated as errors. The signal offsets downstream assume the canonical
	// 13-candle day this implies for hourly data.
	MinCandlesPerDay = 13
)

// Build filters each date's candles to the [09:30, 15:30] trading window,
// orders them by time of day, and drops any date left with fewer than
// MinCandlesPerDay candles. The resulting dataset is sorted by date
// ascending and is read-only thereafter.
func Build(raw map[string][]types.Candle) types.Dataset {
	dates := make([]string, 0, len(raw))
	for date := range raw {
		dates = append(dates, date)
	}
	// YYYYMMDD keys, lexicographic order is chronological order
	sort.Strings(dates)

	data := make(types.Dataset, 0, len(dates))
	for _, date := range dates {
		candles := filterWindow(raw[date])
		if len(candles) < MinCandlesPerDay {
			slog.Debug("Dropping date with insufficient window coverage", "date", date, "candles", len(candles))
			continue
		}
		sort.SliceStable(candles, func(i, j int) bool {
			return candles[i].MinuteOfDay() < candles[j].MinuteOfDay()
		})
		data = append(data, types.TradingDay{Date: date, Candles: candles})
	}

	slog.Debug("Built dataset", "dates_in", len(raw), "dates_kept", len(data))
	return data
}

func filterWindow(candles []types.Candle) []types.Candle {
	kept := make([]types.Candle, 0, len(candles))
	for _, c := range candles {
		m := c.MinuteOfDay()
		if m >= windowOpen && m <= windowClose {
			kept = append(kept, c)
		}
	}
	return kept
}
