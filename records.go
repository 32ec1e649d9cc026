package fundpool

import (
	"fmt"
	"time"

	"github.com/etnz/fundpool/date"
	"github.com/shopspring/decimal"
)

// The pool keeps its books in TWD; foreign instruments trade in USD and
// are converted at the manually maintained rate under FXTicker.
const (
	PoolCurrency    = "TWD"
	ForeignCurrency = "USD"

	// FXTicker is the reserved pseudo-symbol in the price overrides that
	// carries the USD/TWD exchange rate.
	FXTicker = "USDTWD"
)

// DefaultFXRate applies when no rate has been entered yet.
var DefaultFXRate = decimal.NewFromFloat(32.5)

// BootstrapUnitPrice is the initial offering price of one fund unit,
// used before any history snapshot can establish a market NAV-per-unit.
var BootstrapUnitPrice = M(10, PoolCurrency)

// Contribution records a partner wiring cash into the pool.
//
// IssuePrice and Units are optional: early records were written before
// unit accounting existed and carry neither. When present they are
// authoritative; when absent the engine reconstructs them (see Resolve).
// A contribution is immutable once units are derived, except through an
// explicit admin correction of its issue price.
type Contribution struct {
	ID         string
	Date       date.Date
	Partner    string
	Amount     Money    // cash contributed, pool currency, positive
	IssuePrice Money    // recorded NAV-per-unit at contribution time, zero when absent
	Units      Quantity // recorded units issued, zero when absent
}

// Recorded reports whether the contribution carries an authoritative
// issue price or unit count.
func (c Contribution) Recorded() bool {
	return c.IssuePrice.IsPositive() || c.Units.IsPositive()
}

// ResolvedContribution is a contribution whose effective issue price and
// unit count are both known. It is the pure-transform output of the unit
// engine; the embedded record is unchanged.
type ResolvedContribution struct {
	Contribution
	Price  Money    // effective NAV-per-unit at contribution time, positive
	Issued Quantity // units issued, Amount / Price
}

// Side tells whether a trade bought or sold an instrument.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "unknown"
	}
}

// ParseSide parses a trade side from its canonical string.
func ParseSide(str string) (Side, error) {
	switch str {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade side: %q", str)
	}
}

// Trade records a buy or sell of an instrument. Trades are immutable and
// replayed by date; same-day trades keep their insertion order because
// the running average cost is path-dependent.
type Trade struct {
	ID       string
	Date     date.Date
	Symbol   string
	Side     Side
	Price    Money // unit price in the instrument's native currency
	Quantity Quantity
}

// Notional returns price × quantity in the instrument's native currency.
func (t Trade) Notional() Money { return t.Price.Mul(t.Quantity) }

// PriceOverrides maps an instrument symbol to its manually entered
// current price in the instrument's native currency. The reserved
// FXTicker key carries the exchange rate instead of a price.
type PriceOverrides map[string]decimal.Decimal

// Rate returns the USD/TWD exchange rate, DefaultFXRate when absent or
// not positive.
func (p PriceOverrides) Rate() decimal.Decimal {
	if rate, ok := p[FXTicker]; ok && rate.IsPositive() {
		return rate
	}
	return DefaultFXRate
}

// Price returns the override price for a symbol. The FX pseudo-symbol is
// never a price.
func (p PriceOverrides) Price(symbol string) (decimal.Decimal, bool) {
	if symbol == FXTicker {
		return decimal.Decimal{}, false
	}
	price, ok := p[symbol]
	return price, ok
}

// Merge returns a copy of p with the entries of other applied on top.
func (p PriceOverrides) Merge(other PriceOverrides) PriceOverrides {
	merged := make(PriceOverrides, len(p)+len(other))
	for symbol, price := range p {
		merged[symbol] = price
	}
	for symbol, price := range other {
		merged[symbol] = price
	}
	return merged
}

// AssetSnapshot is an admin-recorded point-in-time value of the pool,
// append-only and ordered by timestamp. The unit engine uses it to
// reconstruct the NAV-per-unit that prevailed at past contribution
// dates; reports use it as a time series.
type AssetSnapshot struct {
	Date     date.Date
	Time     time.Time        // ordering key within a day
	Total    Money            // total pool value (cash + market value)
	Partners map[string]Money // per-partner equity at the snapshot
}

// Records is the full, externally-persisted record set the engine
// computes from. It is treated as a consistent snapshot read: the engine
// never mutates it and holds no lock over it.
type Records struct {
	Partners      []string
	Contributions []Contribution
	Trades        []Trade
	Prices        PriceOverrides
	History       []AssetSnapshot
}
