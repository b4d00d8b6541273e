// Package ledger implements the proportional-sizing transaction model over a
// (cash, volume) position.
package ledger

import (
	"errors"
	"fmt"

	"github.com/jwtly10/lazytrader/internal/logging"
	"github.com/jwtly10/lazytrader/internal/types"
)

var ErrInvalidPrice = errors.New("price must be positive")

var ledgerLog = logging.New("ledger")

// Trail is the ordered, append-only record of one run's executed
// transactions. A fresh Trail is created per engine run and returned with the
// run's result, so runs never share one.
type Trail []types.TradeEvent

// Position is the mutable (cash, volume) state of one backtest run.
type Position struct {
	Cash   float64
	Volume float64
}

// NewPosition returns an all-cash position holding the initial fund.
func NewPosition(initialFund float64) *Position {
	return &Position{Cash: initialFund}
}

// MarketValue returns cash plus held volume marked at price.
func (p *Position) MarketValue(price float64) float64 {
	return p.Cash + p.Volume*price
}

// Buy converts pct percent of current market value from cash into shares at
// price, capped at available cash so the position never borrows. A zero-value
// buy (no cash, or pct 0) leaves the position unchanged and records nothing;
// otherwise the trade is appended to trail stamped with date/hour/minute.
func (p *Position) Buy(price, pct float64, date string, hour, minute int, trail *Trail) error {
	if price <= 0 {
		return fmt.Errorf("buy on %s: %w (got %f)", date, ErrInvalidPrice, price)
	}

	marketValue := p.MarketValue(price)
	buyValue := min(p.Cash, marketValue*pct/100.0)
	if buyValue == 0 {
		return nil
	}

	shares := buyValue / price
	p.Cash -= buyValue
	p.Volume += shares

	ledgerLog.Debug("Bought", "date", date, "shares", shares, "price", price, "cash", p.Cash, "volume", p.Volume)

	*trail = append(*trail, types.TradeEvent{
		Date:        date,
		Hour:        hour,
		Minute:      minute,
		Action:      types.Buy,
		Shares:      shares,
		Price:       price,
		Volume:      p.Volume,
		Cash:        p.Cash,
		MarketValue: marketValue,
	})
	return nil
}

// Sell converts pct percent of current market value from shares into cash at
// price, capped at the value of held volume so the position never shorts.
// Zero-value sells are silent no-ops, same as Buy.
func (p *Position) Sell(price, pct float64, date string, hour, minute int, trail *Trail) error {
	if price <= 0 {
		return fmt.Errorf("sell on %s: %w (got %f)", date, ErrInvalidPrice, price)
	}

	marketValue := p.MarketValue(price)
	sellValue := min(p.Volume*price, marketValue*pct/100.0)
	if sellValue == 0 {
		return nil
	}

	shares := sellValue / price
	p.Cash += sellValue
	p.Volume -= shares

	ledgerLog.Debug("Sold", "date", date, "shares", shares, "price", price, "cash", p.Cash, "volume", p.Volume)

	*trail = append(*trail, types.TradeEvent{
		Date:        date,
		Hour:        hour,
		Minute:      minute,
		Action:      types.Sell,
		Shares:      shares,
		Price:       price,
		Volume:      p.Volume,
		Cash:        p.Cash,
		MarketValue: marketValue,
	})
	return nil
}
