// Package loader reads the raw per-symbol candle file that series.Build
// turns into a dataset. The file is JSON, one object keyed by YYYYMMDD date
// with an array of candle records per date.
package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"github.com/jwtly10/lazytrader/internal/types"
)

var (
	ErrDataUnavailable = errors.New("data unavailable")
	ErrMalformedRecord = errors.New("malformed record")
)

var validate = validator.New()

// rawCandle mirrors one candle record on disk. Pointer fields so a missing
// key is distinguishable from a legitimate zero (hour 0 is midnight, not
// absent). Unknown extra fields are ignored by the decoder.
type rawCandle struct {
	Hour   *int     `json:"hour" validate:"required,gte=0,lte=23"`
	Minute *int     `json:"minute" validate:"required,gte=0,lte=59"`
	Open   *float64 `json:"open" validate:"required,gt=0"`
	Close  *float64 `json:"close" validate:"required,gt=0"`
}

// Load reads `<symbol>.json` from dir and returns the raw candles grouped by
// date, unfiltered and unordered. A missing or unreadable file is
// ErrDataUnavailable; a record failing validation is ErrMalformedRecord and
// rejects the whole load rather than being silently coerced.
func Load(dir, symbol string) (map[string][]types.Candle, error) {
	path := filepath.Join(dir, symbol+".json")

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDataUnavailable, path, err)
	}

	var raw map[string][]rawCandle
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrMalformedRecord, path, err)
	}

	out := make(map[string][]types.Candle, len(raw))
	total := 0
	for date, records := range raw {
		candles := make([]types.Candle, 0, len(records))
		for i, r := range records {
			if err := validate.Struct(r); err != nil {
				return nil, fmt.Errorf("%w: %s record %d on %s: %v", ErrMalformedRecord, symbol, i, date, err)
			}
			candles = append(candles, types.Candle{
				Hour:   *r.Hour,
				Minute: *r.Minute,
				Open:   *r.Open,
				Close:  *r.Close,
			})
		}
		out[date] = candles
		total += len(candles)
	}

	slog.Info("Loaded candle file", "symbol", symbol, "dates", len(out), "candles", total)
	return out, nil
}
