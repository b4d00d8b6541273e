// Package pine renders a run's trade trail as a TradingView Pine Script
// study of label annotations, for eyeballing the trades on a chart.
package pine

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jwtly10/lazytrader/internal/engine"
	"github.com/jwtly10/lazytrader/internal/ledger"
	"github.com/jwtly10/lazytrader/internal/types"
)

// Render generates the Pine Script for a trade trail. Each trade becomes a
// label.new call at its bar; label placement alternates above/below the bar
// by event parity purely to keep dense trails readable. Buys are green,
// sells red. The winning parameters ride along as a comment.
func Render(params engine.Parameters, trail ledger.Trail) string {
	var sb strings.Builder

	sb.WriteString("// @version=4\n")
	sb.WriteString("study(\"Script\", overlay=true, max_labels_count=500)\n")
	sb.WriteString(fmt.Sprintf("// %s\n", params))

	for i, ev := range trail {
		yloc := "belowbar"
		style := "up"
		if i%2 == 0 {
			yloc = "abovebar"
			style = "down"
		}

		action := "Buy"
		color := "green"
		if ev.Action == types.Sell {
			action = "Sell"
			color = "red"
		}

		year, month, day := splitDate(ev.Date)
		sb.WriteString(fmt.Sprintf(
			"label.new(timestamp(%d,%d,%d,%d,%d),close,xloc=xloc.bar_time,"+
				"yloc=yloc.%s,text=\"%s %.0f@%.2f, hold %.0f,\\ncash %.0f, value %.0f\","+
				"style=label.style_label%s,color=color.%s)\n",
			year, month, day, ev.Hour, ev.Minute,
			yloc,
			action, ev.Shares, ev.Price, ev.Volume,
			ev.Cash, ev.MarketValue,
			style, color,
		))
	}

	return sb.String()
}

// WriteFile renders the trail and writes it to path.
func WriteFile(path string, params engine.Parameters, trail ledger.Trail) error {
	script := Render(params, trail)
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return fmt.Errorf("writing pine script to %s: %w", path, err)
	}
	slog.Info("Wrote pine script", "path", path, "labels", len(trail))
	return nil
}

// splitDate breaks a YYYYMMDD date into its numeric parts. Dates come from
// the loader's JSON keys and are assumed well-formed by this point.
func splitDate(date string) (year, month, day int) {
	if len(date) != 8 {
		return 0, 0, 0
	}
	year, _ = strconv.Atoi(date[:4])
	month, _ = strconv.Atoi(date[4:6])
	day, _ = strconv.Atoi(date[6:])
	return year, month, day
}
