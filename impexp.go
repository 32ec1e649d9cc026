package fundpool

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fundpool/date"
	"github.com/shopspring/decimal"
)

// This file imports the legacy export format: a single JSON object
// dumped from the old web app's local storage, with the fund records
// under "inv_funds", trades under "inv_trades" and the price map under
// "inv_prices". An optional "inv_partners" list carries the roster;
// without it the roster derives from the contributors in order of first
// appearance.
//
// Legacy records were typed by the browser, so every number may arrive
// as a string and every field may be missing. Import coerces rather
// than rejects.

// ImportLegacy reads a legacy export and converts it into a record set.
func ImportLegacy(r io.Reader) (*Records, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse legacy export: %w", err)
	}

	records := &Records{Prices: make(PriceOverrides)}

	for _, name := range jstrings(jget(jobj, "$.inv_partners")) {
		records.Partners = append(records.Partners, name)
	}

	for _, jfund := range jlist(jget(jobj, "$.inv_funds")) {
		f, ok := jfund.(map[string]any)
		if !ok {
			continue
		}
		c := Contribution{
			ID:      jstring(f["id"]),
			Date:    jdate(f["date"]),
			Partner: jstring(f["investor"]),
			Amount:  M(jnum(f["amount"]), PoolCurrency),
		}
		if price := jnum(f["navPerUnit"]); price.IsPositive() {
			c.IssuePrice = M(price, PoolCurrency)
		}
		if units := jnum(f["units"]); units.IsPositive() {
			c.Units = Q(units)
		}
		records.Contributions = append(records.Contributions, c)
		if c.Partner != "" && !contains(records.Partners, c.Partner) {
			records.Partners = append(records.Partners, c.Partner)
		}
	}

	for _, jtrade := range jlist(jget(jobj, "$.inv_trades")) {
		t, ok := jtrade.(map[string]any)
		if !ok {
			continue
		}
		side, err := ParseSide(jstring(t["type"]))
		if err != nil {
			continue
		}
		symbol := jstring(t["ticker"])
		records.Trades = append(records.Trades, Trade{
			ID:       jstring(t["id"]),
			Date:     jdate(t["date"]),
			Symbol:   symbol,
			Side:     side,
			Price:    M(jnum(t["price"]), TradeCurrency(symbol)),
			Quantity: Q(jnum(t["qty"])),
		})
	}

	if prices, ok := jget(jobj, "$.inv_prices").(map[string]any); ok {
		for symbol, price := range prices {
			records.Prices[symbol] = jnum(price)
		}
	}

	for _, jsnap := range jlist(jget(jobj, "$.inv_history")) {
		s, ok := jsnap.(map[string]any)
		if !ok {
			continue
		}
		day := jdate(s["date"])
		snapshot := AssetSnapshot{
			Date:     day,
			Time:     day.At(0, 0, 0),
			Total:    M(jnum(s["totalValue"]), PoolCurrency),
			Partners: make(map[string]Money),
		}
		if equities, ok := s["partners"].(map[string]any); ok {
			for name, equity := range equities {
				snapshot.Partners[name] = M(jnum(equity), PoolCurrency)
			}
		}
		records.History = append(records.History, snapshot)
	}

	return records, nil
}

// jget evaluates a jsonpath expression, nil when the path is absent.
// jsonpath is never clear about whether it returns a list of one answer
// or a single answer, so a one-element list unwraps.
func jget(jobj any, path string) any {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil
	}
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		if _, nested := jlist[0].([]any); nested {
			return jlist[0]
		}
	}
	return jval
}

func jlist(jval any) []any {
	list, _ := jval.([]any)
	return list
}

func jstrings(jval any) []string {
	var out []string
	for _, v := range jlist(jval) {
		if s := jstring(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// jstring renders a legacy value as a string; browser ids are sometimes
// numbers.
func jstring(jval any) string {
	switch v := jval.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return decimal.NewFromFloat(v).String()
	default:
		return fmt.Sprint(v)
	}
}

// jnum coerces a legacy value to a decimal, zero when malformed.
func jnum(jval any) decimal.Decimal {
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}
		}
		return d
	default:
		return decimal.Decimal{}
	}
}

func jdate(jval any) date.Date {
	d, err := date.Parse(jstring(jval))
	if err != nil {
		return date.Date{}
	}
	return d
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
