package fundpool

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Position is the running book state of one instrument: the open
// quantity and its accumulated cost basis in the pool currency.
type Position struct {
	Symbol    string
	Quantity  Quantity
	TotalCost Money
}

// AvgCost returns the average cost per unit, zero for an empty position.
func (p Position) AvgCost() Money {
	if !p.Quantity.IsPositive() {
		return M(0, PoolCurrency)
	}
	return p.TotalCost.Div(p.Quantity)
}

// Book is the cash and position state after replaying every trade
// against the capital contributed so far.
type Book struct {
	Cash      Money
	Positions map[string]*Position
	Symbols   []string // order of first appearance in the replay
}

// Position returns the book entry for a symbol, a zero position when the
// symbol never traded.
func (b *Book) Position(symbol string) Position {
	if p, ok := b.Positions[symbol]; ok {
		return *p
	}
	return Position{Symbol: symbol, TotalCost: M(0, PoolCurrency)}
}

// ReplayTrades derives the book from scratch: opening cash minus every
// buy, plus every sell, with the average-cost method relieving the cost
// basis on sales. Trades replay in date order; same-day trades keep
// their insertion order because the running average is path-dependent.
//
// Foreign notionals convert to the pool currency at the single current
// rate. A sell larger than the open quantity is not rejected: the
// quantity goes negative and valuation skips it.
func ReplayTrades(opening Money, trades []Trade, rate decimal.Decimal) *Book {
	book := &Book{
		Cash:      opening.In(PoolCurrency),
		Positions: make(map[string]*Position),
	}

	ordered := make([]Trade, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Date.Before(ordered[j].Date) })

	for _, t := range ordered {
		pos, ok := book.Positions[t.Symbol]
		if !ok {
			pos = &Position{Symbol: t.Symbol, TotalCost: M(0, PoolCurrency)}
			book.Positions[t.Symbol] = pos
			book.Symbols = append(book.Symbols, t.Symbol)
		}

		notional := t.Notional()
		if Classify(t.Symbol) == Foreign {
			notional = notional.Scale(rate)
		}
		notional = notional.In(PoolCurrency)

		switch t.Side {
		case Buy:
			book.Cash = book.Cash.Sub(notional)
			pos.Quantity = pos.Quantity.Add(t.Quantity)
			pos.TotalCost = pos.TotalCost.Add(notional)
		case Sell:
			// Relieve the basis at the average prevailing before
			// this sale.
			relief := pos.AvgCost().Mul(t.Quantity)
			book.Cash = book.Cash.Add(notional)
			pos.Quantity = pos.Quantity.Sub(t.Quantity)
			pos.TotalCost = pos.TotalCost.Sub(relief)
		}
	}
	return book
}
