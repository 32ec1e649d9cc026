package fundpool

import (
	"time"

	"github.com/etnz/fundpool/date"
	"github.com/shopspring/decimal"
)

// CashLabel names the cash slice in allocation breakdowns.
const CashLabel = "Cash"

// PartnerEquity is one partner's line in the equity report.
type PartnerEquity struct {
	Name        string
	Contributed Money
	Units       Quantity
	Equity      Money // units × current NAV per unit
	PL          Money // equity minus contributed
	Return      Percent
	Share       Percent // of units outstanding
}

// AllocationSlice is one positive-valued slice of the pool: cash or an
// open position at market value.
type AllocationSlice struct {
	Label string
	Value Money
	Share Percent // of total pool value
}

// State is the complete derived view of the pool. It is a pure function
// of the records: every report reads from here and nothing in here is
// ever stored back.
type State struct {
	Capital     CapitalSummary
	Rate        decimal.Decimal
	Book        *Book
	Valuations  []Valuation
	MarketValue Money
	TotalValue  Money // cash plus market value
	Units       *UnitLedger
	UnitPrice   Money
	Partners    []PartnerEquity
	Allocation  []AllocationSlice
	History     []AssetSnapshot // chronological
}

// Compute derives the full state from a consistent read of the records.
// It is called after every mutation and on every report; it never
// mutates its input. Contributions from partners not on the roster are
// ignored throughout, so capital, units and equity always agree.
func Compute(r *Records) *State {
	roster := make(map[string]bool, len(r.Partners))
	for _, name := range r.Partners {
		roster[name] = true
	}
	contributions := make([]Contribution, 0, len(r.Contributions))
	for _, c := range r.Contributions {
		if roster[c.Partner] {
			contributions = append(contributions, c)
		}
	}

	s := &State{
		Capital: SummarizeCapital(r.Partners, contributions),
		Rate:    r.Prices.Rate(),
		History: sortedHistory(r.History),
	}
	s.Book = ReplayTrades(s.Capital.Total, r.Trades, s.Rate)
	s.Valuations, s.MarketValue = Valuate(s.Book, r.Prices, s.Rate)
	s.TotalValue = s.Book.Cash.Add(s.MarketValue)
	s.Units = ResolveUnits(contributions, r.History)
	s.UnitPrice = UnitPrice(s.TotalValue, s.Units.TotalUnits)

	for _, name := range r.Partners {
		units := s.Units.UnitsOf(name)
		contributed := s.Capital.ByPartner[name]
		equity := s.UnitPrice.Mul(units)
		pl := equity.Sub(contributed)
		s.Partners = append(s.Partners, PartnerEquity{
			Name:        name,
			Contributed: contributed,
			Units:       units,
			Equity:      equity,
			PL:          pl,
			Return:      pl.Ratio(contributed),
			Share:       units.Share(s.Units.TotalUnits),
		})
	}

	if s.Book.Cash.IsPositive() {
		s.Allocation = append(s.Allocation, AllocationSlice{
			Label: CashLabel,
			Value: s.Book.Cash,
			Share: s.Book.Cash.Ratio(s.TotalValue),
		})
	}
	for _, v := range s.Valuations {
		if !v.MarketValue.IsPositive() {
			continue
		}
		s.Allocation = append(s.Allocation, AllocationSlice{
			Label: v.Symbol,
			Value: v.MarketValue,
			Share: v.MarketValue.Ratio(s.TotalValue),
		})
	}
	return s
}

// SnapshotNow freezes the current state into an asset snapshot, ready
// to append to the history.
func (s *State) SnapshotNow(now time.Time) AssetSnapshot {
	snapshot := AssetSnapshot{
		Date:     date.New(now.Year(), now.Month(), now.Day()),
		Time:     now,
		Total:    s.TotalValue,
		Partners: make(map[string]Money, len(s.Partners)),
	}
	for _, p := range s.Partners {
		snapshot.Partners[p.Name] = p.Equity
	}
	return snapshot
}
