package main

import (
	"log/slog"
	"os"

	"github.com/jwtly10/lazytrader/internal/config"
	"github.com/jwtly10/lazytrader/internal/engine"
	"github.com/jwtly10/lazytrader/internal/loader"
	"github.com/jwtly10/lazytrader/internal/optimizer"
	"github.com/jwtly10/lazytrader/internal/pine"
	"github.com/jwtly10/lazytrader/internal/report"
	"github.com/jwtly10/lazytrader/internal/series"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	raw, err := loader.Load(cfg.DataDir, cfg.Symbol)
	if err != nil {
		slog.Error("Failed to load candle data", "symbol", cfg.Symbol, "error", err)
		os.Exit(1)
	}

	data := series.Build(raw)
	if len(data) == 0 {
		slog.Error("No trading days left after filtering", "symbol", cfg.Symbol)
		os.Exit(1)
	}
	slog.Info("Dataset ready", "symbol", cfg.Symbol, "trading_days", len(data))

	eng := engine.New(data, cfg.InitialFund)
	grid := optimizer.Grid(cfg.OperationPcts, cfg.Volatilities)
	opt := optimizer.New(eng)

	if cfg.Workers > 1 {
		err = opt.RunParallel(grid, cfg.Workers)
	} else {
		err = opt.Run(grid)
	}
	if err != nil {
		slog.Error("Sweep failed", "error", err)
		os.Exit(1)
	}

	best, err := opt.Best()
	if err != nil {
		slog.Error("Sweep produced no result", "error", err)
		os.Exit(1)
	}

	report.Summary{
		Symbol:      cfg.Symbol,
		InitialFund: cfg.InitialFund,
		BuyAndHold:  eng.BuyAndHold(),
		Best:        best,
		GridSize:    len(grid),
	}.Print()

	if err := pine.WriteFile(cfg.PineOut, best.Params, best.Trail); err != nil {
		slog.Error("Failed to write pine script", "error", err)
		os.Exit(1)
	}
}
