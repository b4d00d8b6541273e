// Package optimizer sweeps the backtest engine over a grid of strategy
// parameters and reduces the runs to the best-valued one.
package optimizer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jwtly10/lazytrader/internal/engine"
	"github.com/jwtly10/lazytrader/internal/ledger"
	"github.com/jwtly10/lazytrader/internal/logging"
)

var ErrNoRunsEvaluated = errors.New("no runs evaluated")

var sweepLog = logging.New("sweep")

// Optimizer owns the best-result reduction for one sweep. Runs for distinct
// parameter tuples share nothing but the read-only dataset, so they may
// execute concurrently; only the reduction itself is serialized.
type Optimizer struct {
	engine *engine.Engine

	mu        sync.Mutex
	best      *engine.RunResult
	bestIndex int
	table     map[engine.Parameters]float64
}

func New(eng *engine.Engine) *Optimizer {
	return &Optimizer{
		engine: eng,
		table:  make(map[engine.Parameters]float64),
	}
}

// Run evaluates the grid sequentially in order.
func (o *Optimizer) Run(grid []engine.Parameters) error {
	for i, params := range grid {
		res, err := o.engine.Run(params)
		if err != nil {
			return fmt.Errorf("run %s: %w", params, err)
		}
		o.reduce(i, res)
	}
	return nil
}

// RunParallel evaluates the grid on the given number of workers. The
// reduction breaks final-value ties by grid position, so the surviving best
// is the same one Run would keep regardless of completion order.
func (o *Optimizer) RunParallel(grid []engine.Parameters, workers int) error {
	if workers < 1 {
		workers = 1
	}
	if workers > len(grid) {
		workers = len(grid)
	}

	sweepLog.Debug("Starting parallel sweep", "grid", len(grid), "workers", workers)

	// Pre-filled and closed up front so workers that bail on error never
	// strand a blocked sender.
	indexes := make(chan int, len(grid))
	for i := range grid {
		indexes <- i
	}
	close(indexes)

	errCh := make(chan error, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				res, err := o.engine.Run(grid[i])
				if err != nil {
					errCh <- fmt.Errorf("run %s: %w", grid[i], err)
					return
				}
				o.reduce(i, res)
			}
		}()
	}

	wg.Wait()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

// reduce folds one run into the running best. Strictly greater final value
// wins; on equal values the run earlier in the grid wins, matching
// sequential first-seen-wins semantics. The losing trail is dropped here, so
// after a sweep only the winning run's trail remains in memory.
func (o *Optimizer) reduce(gridIndex int, res engine.RunResult) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.table[res.Params] = res.FinalValue

	if o.best == nil ||
		res.FinalValue > o.best.FinalValue ||
		(res.FinalValue == o.best.FinalValue && gridIndex < o.bestIndex) {
		sweepLog.Debug("New best run", "params", res.Params.String(), "final_value", res.FinalValue, "trades", len(res.Trail))
		o.best = &res
		o.bestIndex = gridIndex
	}
}

// Best returns the winning run of the sweep.
func (o *Optimizer) Best() (engine.RunResult, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.best == nil {
		return engine.RunResult{}, ErrNoRunsEvaluated
	}
	return *o.best, nil
}

// BestParameters returns the parameter tuple of the winning run.
func (o *Optimizer) BestParameters() (engine.Parameters, error) {
	best, err := o.Best()
	return best.Params, err
}

// BestValue returns the final portfolio value of the winning run.
func (o *Optimizer) BestValue() (float64, error) {
	best, err := o.Best()
	return best.FinalValue, err
}

// BestTradeTrail returns the trade trail of the winning run. Trails of other
// runs are discarded during the sweep.
func (o *Optimizer) BestTradeTrail() (ledger.Trail, error) {
	best, err := o.Best()
	return best.Trail, err
}

// Results returns the full parameters-to-final-value table of the sweep.
func (o *Optimizer) Results() map[engine.Parameters]float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make(map[engine.Parameters]float64, len(o.table))
	for k, v := range o.table {
		out[k] = v
	}
	return out
}

// Grid expands operation percentages and volatility spans into the parameter
// grid: each volatility v yields bullish 100+v and bearish 100-v.
func Grid(operationPcts, volatilities []float64) []engine.Parameters {
	grid := make([]engine.Parameters, 0, len(operationPcts)*len(volatilities))
	for _, op := range operationPcts {
		for _, v := range volatilities {
			grid = append(grid, engine.Parameters{
				OperationPct: op,
				BullishPct:   100 + v,
				BearishPct:   100 - v,
			})
		}
	}
	return grid
}
