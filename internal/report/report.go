// Package report prints the human-readable sweep summary.
package report

import (
	"fmt"

	"github.com/jwtly10/lazytrader/internal/engine"
)

// Summary is everything the final printout needs from a finished sweep.
type Summary struct {
	Symbol      string
	InitialFund float64
	BuyAndHold  float64
	Best        engine.RunResult
	GridSize    int
}

func (s Summary) Print() {
	fmt.Println("\n=== Sweep Summary ===")
	fmt.Printf("Symbol:           %s\n", s.Symbol)
	fmt.Printf("Initial fund:     $%.0f\n", s.InitialFund)
	fmt.Printf("Grid points:      %d\n\n", s.GridSize)

	fmt.Printf("Buy & hold:       $%.0f (%+.0f%%)\n", s.BuyAndHold, percentGain(s.InitialFund, s.BuyAndHold))
	fmt.Printf("Best strategy:    $%.0f (%+.0f%%)\n", s.Best.FinalValue, percentGain(s.InitialFund, s.Best.FinalValue))
	fmt.Printf("Best parameters:  %s\n", s.Best.Params)
	fmt.Printf("Trades executed:  %d\n\n", len(s.Best.Trail))

	c := s.Best.Counts
	fmt.Printf("Signal fires:     overnight-bearish=%d morning-bearish=%d morning-bullish=%d afternoon-bullish=%d\n",
		c.YesterdayAfternoonBearish, c.MorningBearish, c.MorningBullish, c.AfternoonBullish)
}

func percentGain(initial, final float64) float64 {
	return (final - initial) / initial * 100
}
