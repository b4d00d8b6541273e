// Package engine runs one strategy backtest over an ordered candle dataset.
package engine

import (
	"fmt"

	"github.com/jwtly10/lazytrader/internal/ledger"
	"github.com/jwtly10/lazytrader/internal/logging"
	"github.com/jwtly10/lazytrader/internal/signal"
	"github.com/jwtly10/lazytrader/internal/types"
)

var engineLog = logging.New("engine")

// Parameters is one point of the sweep grid. Thresholds are percentages
// centered at 100 (102 = +2%). The engine does not validate ranges; a
// degenerate percentage produces a degenerate but well-defined run, and
// keeping values sane is the caller's responsibility. The struct is
// comparable so it can key result tables directly.
type Parameters struct {
	OperationPct float64
	BullishPct   float64
	BearishPct   float64
}

func (p Parameters) String() string {
	return fmt.Sprintf("operation=%.0f%% bullish=%.1f bearish=%.1f", p.OperationPct, p.BullishPct, p.BearishPct)
}

// SignalCounts tallies how often each signal fired during a run.
type SignalCounts struct {
	YesterdayAfternoonBearish int
	MorningBearish            int
	MorningBullish            int
	AfternoonBullish          int
}

// RunResult is the outcome of one engine run: the parameters it used, the
// ending portfolio value, and the trail of executed trades.
type RunResult struct {
	Params     Parameters
	FinalValue float64
	Trail      ledger.Trail
	Counts     SignalCounts
}

// Engine walks a dataset once per Run call. The dataset is read-only, so one
// Engine may serve arbitrarily many concurrent runs.
type Engine struct {
	data        types.Dataset
	initialFund float64
}

func New(data types.Dataset, initialFund float64) *Engine {
	return &Engine{
		data:        data,
		initialFund: initialFund,
	}
}

// Run executes the strategy under params across the full dataset and returns
// the resulting portfolio value and trade trail. The walk starts at the
// second date because the overnight signal needs a previous day. Within a
// date the four checks run in fixed order and are non-exclusive: each check
// sees the cash/volume left by the one before it, so a day can both buy and
// sell. Identical dataset and parameters always produce an identical result.
func (e *Engine) Run(params Parameters) (RunResult, error) {
	pos := ledger.NewPosition(e.initialFund)
	trail := ledger.Trail{}
	counts := SignalCounts{}
	lastPrice := 0.0

	engineLog.Debug("Starting run", "params", params.String(), "initial_fund", e.initialFund, "dates", len(e.data))

	for i := 1; i < len(e.data); i++ {
		today := e.data[i]
		yesterday := e.data[i-1]

		if signal.YesterdayAfternoonBearish(yesterday.Candles, params.BearishPct) {
			price := (today.Candles[0].Open + today.Candles[0].Close) / 2.0
			if err := pos.Buy(price, params.OperationPct, today.Date, 9, 0, &trail); err != nil {
				return RunResult{}, err
			}
			counts.YesterdayAfternoonBearish++
		}
		if signal.MorningBearish(today.Candles, params.BearishPct) {
			price := (today.Candles[1].Open + today.Candles[1].Close) / 2.0
			if err := pos.Buy(price, params.OperationPct, today.Date, 10, 0, &trail); err != nil {
				return RunResult{}, err
			}
			counts.MorningBearish++
		}
		if signal.MorningBullish(today.Candles, params.BullishPct) {
			price := (today.Candles[1].Open + today.Candles[1].Close) / 2.0
			if err := pos.Sell(price, params.OperationPct, today.Date, 10, 0, &trail); err != nil {
				return RunResult{}, err
			}
			counts.MorningBullish++
		}
		if signal.AfternoonBullish(today.Candles, params.BullishPct) {
			// Priced off the 10:00 candle and stamped 10:00, even though the
			// signal itself is an afternoon observation. Reproduced from the
			// reference strategy as-is.
			price := (today.Candles[1].Open + today.Candles[1].Close) / 2.0
			if err := pos.Sell(price, params.OperationPct, today.Date, 10, 0, &trail); err != nil {
				return RunResult{}, err
			}
			counts.AfternoonBullish++
		}

		lastPrice = today.Candles[len(today.Candles)-1].Close
	}

	finalValue := pos.Cash + pos.Volume*lastPrice
	engineLog.Debug("Run complete", "params", params.String(), "final_value", finalValue, "trades", len(trail))

	return RunResult{
		Params:     params,
		FinalValue: finalValue,
		Trail:      trail,
		Counts:     counts,
	}, nil
}

// BuyAndHold returns the ending value of simply holding from the first
// candle's open through the last candle's close, as a baseline for the
// strategy results.
func (e *Engine) BuyAndHold() float64 {
	if len(e.data) == 0 {
		return e.initialFund
	}
	first := e.data[0].Candles[0].Open
	lastDay := e.data[len(e.data)-1].Candles
	last := lastDay[len(lastDay)-1].Close
	return e.initialFund * last / first
}
