package fundpool

import "github.com/shopspring/decimal"

// Valuation is the mark-to-market view of one open position.
type Valuation struct {
	Symbol      string
	Currency    Currency
	Quantity    Quantity
	AvgCost     Money // per unit, pool currency
	Price       Money // per unit, native currency
	Quoted      bool  // price came from an override, not break-even
	Cost        Money
	MarketValue Money
	Unrealized  Money
	Return      Percent
}

// Valuate marks every open position against the price overrides and
// returns the rows plus the total market value, both in the pool
// currency. Positions with a non-positive quantity (fully closed or
// oversold) are excluded.
//
// An instrument with no override is valued at break-even: its price
// backs out of the average cost, so market value equals cost and the
// unrealized gain reads zero rather than a fictitious loss.
func Valuate(book *Book, prices PriceOverrides, rate decimal.Decimal) ([]Valuation, Money) {
	total := M(0, PoolCurrency)
	var rows []Valuation
	for _, symbol := range book.Symbols {
		pos := book.Position(symbol)
		if !pos.Quantity.IsPositive() {
			continue
		}

		currency := Classify(symbol)
		row := Valuation{
			Symbol:   symbol,
			Currency: currency,
			Quantity: pos.Quantity,
			AvgCost:  pos.AvgCost(),
			Cost:     pos.TotalCost,
		}

		if quote, ok := prices.Price(symbol); ok {
			row.Quoted = true
			row.Price = M(quote, currency.String())
			row.MarketValue = row.Price.Mul(pos.Quantity)
			if currency == Foreign {
				row.MarketValue = row.MarketValue.Scale(rate)
			}
			row.MarketValue = row.MarketValue.In(PoolCurrency)
		} else {
			native := row.AvgCost.Decimal()
			if currency == Foreign && rate.IsPositive() {
				native = native.Div(rate)
			}
			row.Price = M(native, currency.String())
			row.MarketValue = pos.TotalCost
		}

		row.Unrealized = row.MarketValue.Sub(row.Cost)
		row.Return = row.Unrealized.Ratio(row.Cost)
		total = total.Add(row.MarketValue)
		rows = append(rows, row)
	}
	return rows, total
}
