package fundpool

import (
	"sort"

	"github.com/etnz/fundpool/date"
)

// UnitLedger is the result of resolving every contribution into fund
// units. Contributions keeps the input order; resolution itself runs in
// date order because reconstructed prices depend on the units already
// outstanding.
type UnitLedger struct {
	Contributions []ResolvedContribution
	TotalUnits    Quantity
	PerPartner    map[string]Quantity
}

// UnitsOf returns the units held by a partner, zero when unknown.
func (l *UnitLedger) UnitsOf(partner string) Quantity { return l.PerPartner[partner] }

// ResolveUnits assigns an effective issue price and unit count to every
// contribution. Recorded figures are authoritative and never recomputed.
// For a bare contribution the price is reconstructed from the most
// recent asset snapshot strictly before the contribution date: NAV per
// unit is the snapshot total divided by the units outstanding as of the
// snapshot date. With no usable snapshot, or no units outstanding yet,
// the bootstrap offering price applies.
func ResolveUnits(contributions []Contribution, history []AssetSnapshot) *UnitLedger {
	ledger := &UnitLedger{
		Contributions: make([]ResolvedContribution, len(contributions)),
		PerPartner:    make(map[string]Quantity),
	}

	order := make([]int, len(contributions))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return contributions[order[a]].Date.Before(contributions[order[b]].Date)
	})

	snaps := sortedHistory(history)

	processed := make([]ResolvedContribution, 0, len(contributions))
	for _, i := range order {
		r := resolveOne(contributions[i], snaps, processed)
		processed = append(processed, r)
		ledger.Contributions[i] = r
		ledger.TotalUnits = ledger.TotalUnits.Add(r.Issued)
		ledger.PerPartner[r.Partner] = ledger.PerPartner[r.Partner].Add(r.Issued)
	}
	return ledger
}

func resolveOne(c Contribution, snaps []AssetSnapshot, processed []ResolvedContribution) ResolvedContribution {
	r := ResolvedContribution{Contribution: c}
	switch {
	case c.Units.IsPositive():
		// Recorded units win. The price is recorded too, or backs
		// out of the amount.
		r.Issued = c.Units
		if c.IssuePrice.IsPositive() {
			r.Price = c.IssuePrice
		} else {
			r.Price = c.Amount.Div(c.Units)
		}
	case c.IssuePrice.IsPositive():
		r.Price = c.IssuePrice
		r.Issued = c.Amount.DivPrice(c.IssuePrice)
	default:
		r.Price = reconstructPrice(c.Date, snaps, processed)
		r.Issued = c.Amount.DivPrice(r.Price)
	}
	return r
}

// reconstructPrice recovers the NAV-per-unit that prevailed on a past
// contribution date from the snapshot history.
func reconstructPrice(day date.Date, snaps []AssetSnapshot, processed []ResolvedContribution) Money {
	for i := len(snaps) - 1; i >= 0; i-- {
		snap := snaps[i]
		if !snap.Date.Before(day) {
			continue
		}
		var asOf Quantity
		for _, p := range processed {
			if !p.Date.After(snap.Date) {
				asOf = asOf.Add(p.Issued)
			}
		}
		if asOf.IsPositive() {
			return snap.Total.Div(asOf)
		}
		// A snapshot taken before any units existed cannot price
		// anything.
		return BootstrapUnitPrice
	}
	return BootstrapUnitPrice
}

// UnitPrice returns the current NAV per unit: total pool value over
// units outstanding, or the bootstrap offering price while the fund is
// empty.
func UnitPrice(total Money, units Quantity) Money {
	if !units.IsPositive() {
		return BootstrapUnitPrice
	}
	return total.Div(units)
}

// sortedHistory returns the snapshots ordered by date then intra-day
// timestamp, leaving the stored order untouched.
func sortedHistory(history []AssetSnapshot) []AssetSnapshot {
	snaps := make([]AssetSnapshot, len(history))
	copy(snaps, history)
	sort.SliceStable(snaps, func(i, j int) bool {
		if snaps[i].Date != snaps[j].Date {
			return snaps[i].Date.Before(snaps[j].Date)
		}
		return snaps[i].Time.Before(snaps[j].Time)
	})
	return snaps
}
