package fundpool

// CapitalSummary aggregates contributed capital per partner and for the
// pool as a whole.
type CapitalSummary struct {
	Total     Money
	ByPartner map[string]Money
	Partners  []string // declared roster, in declaration order
}

// SummarizeCapital totals contributions by partner. Only partners on the
// declared roster participate: a contribution naming an unknown partner
// is excluded from both the per-partner map and the pool total, so the
// total always equals the sum of the per-partner figures. Declared
// partners with no contribution appear with a zero total.
func SummarizeCapital(partners []string, contributions []Contribution) CapitalSummary {
	summary := CapitalSummary{
		Total:     M(0, PoolCurrency),
		ByPartner: make(map[string]Money, len(partners)),
		Partners:  partners,
	}
	for _, name := range partners {
		summary.ByPartner[name] = M(0, PoolCurrency)
	}
	for _, c := range contributions {
		sum, ok := summary.ByPartner[c.Partner]
		if !ok {
			continue
		}
		summary.ByPartner[c.Partner] = sum.Add(c.Amount)
		summary.Total = summary.Total.Add(c.Amount)
	}
	return summary
}
