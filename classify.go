package fundpool

// Currency classifies an instrument by its trading currency.
type Currency int

const (
	// Local instruments trade in the pool currency (TWD), no conversion.
	Local Currency = iota
	// Foreign instruments trade in USD; their notionals and market
	// values convert at the maintained exchange rate.
	Foreign
)

func (c Currency) String() string {
	if c == Foreign {
		return ForeignCurrency
	}
	return PoolCurrency
}

// Classify derives an instrument's currency from its symbol alone: a
// non-empty symbol made only of uppercase ASCII letters is a Foreign
// ticker (VT, VOO), anything else (numeric Taiwan codes like 0050,
// mixed strings) is Local. No instrument registry exists; the symbol is
// the whole truth.
func Classify(symbol string) Currency {
	if symbol == "" {
		return Local
	}
	for _, r := range symbol {
		if r < 'A' || r > 'Z' {
			return Local
		}
	}
	return Foreign
}

// TradeCurrency returns the ISO currency code a symbol trades in.
func TradeCurrency(symbol string) string { return Classify(symbol).String() }
