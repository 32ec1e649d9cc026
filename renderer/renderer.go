// Package renderer turns the computed pool state into markdown reports.
// Every report is a plain string; the CLI decides how to display it.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fundpool"
	md "github.com/nao1215/markdown"
)

// Dashboard renders the full overview: pool summary, partner equity and
// asset allocation.
func Dashboard(s *fundpool.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Pool Dashboard")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Value", s.TotalValue.String()},
			{"Cash", s.Book.Cash.String()},
			{"Market Value", s.MarketValue.String()},
			{"NAV per Unit", s.UnitPrice.String()},
			{"Units Outstanding", s.Units.TotalUnits.String()},
			{"USD/TWD Rate", s.Rate.String()},
		},
	})

	doc.H2("Partners")
	doc.Table(partnerTable(s))

	doc.H2("Allocation")
	doc.Table(allocationTable(s))

	return doc.String()
}

// Partners renders the per-partner equity report alone.
func Partners(s *fundpool.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Partner Equity")
	doc.Table(partnerTable(s))
	return doc.String()
}

func partnerTable(s *fundpool.State) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Partner", "Contributed", "Units", "Equity", "P&L", "Return", "Share"},
		Rows:   [][]string{},
	}
	for _, p := range s.Partners {
		table.Rows = append(table.Rows, []string{
			p.Name,
			p.Contributed.String(),
			p.Units.String(),
			p.Equity.String(),
			p.PL.SignedString(),
			p.Return.SignedString(),
			p.Share.String(),
		})
	}
	return table
}

func allocationTable(s *fundpool.State) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Asset", "Value", "Share"},
		Rows:      [][]string{},
	}
	for _, a := range s.Allocation {
		table.Rows = append(table.Rows, []string{a.Label, a.Value.String(), a.Share.String()})
	}
	return table
}

// Holdings renders the mark-to-market view of every open position. A
// break-even price is flagged so nobody mistakes it for a market quote.
func Holdings(s *fundpool.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Holdings")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Ccy", "Quantity", "Avg Cost", "Price", "Market Value", "Unrealized", "Return"},
		Rows:   [][]string{},
	}
	for _, v := range s.Valuations {
		price := v.Price.String()
		if !v.Quoted {
			price += " (cost)"
		}
		table.Rows = append(table.Rows, []string{
			v.Symbol,
			v.Currency.String(),
			v.Quantity.String(),
			v.AvgCost.String(),
			price,
			v.MarketValue.String(),
			v.Unrealized.SignedString(),
			v.Return.SignedString(),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total market value: %s", s.MarketValue))
	return doc.String()
}

// Contributions lists every resolved contribution with the price and
// units it was issued at.
func Contributions(s *fundpool.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Contributions")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Date", "Partner", "Amount", "Issue Price", "Units"},
		Rows:   [][]string{},
	}
	for _, c := range s.Units.Contributions {
		table.Rows = append(table.Rows, []string{
			c.ID,
			c.Date.String(),
			c.Partner,
			c.Amount.String(),
			c.Price.String(),
			c.Issued.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Trades lists every trade in the book.
func Trades(trades []fundpool.Trade) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Trades")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Date", "Symbol", "Side", "Price", "Quantity", "Notional"},
		Rows:   [][]string{},
	}
	for _, t := range trades {
		table.Rows = append(table.Rows, []string{
			t.ID,
			t.Date.String(),
			t.Symbol,
			t.Side.String(),
			t.Price.String(),
			t.Quantity.String(),
			t.Notional().String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// History renders the snapshot time series, oldest first.
func History(s *fundpool.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Pool Value History")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Total Value"},
		Rows:      [][]string{},
	}
	for _, snapshot := range s.History {
		table.Rows = append(table.Rows, []string{
			snapshot.Date.String(),
			snapshot.Total.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
