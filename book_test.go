package fundpool

import (
	"testing"

	"github.com/etnz/fundpool/date"
	"github.com/shopspring/decimal"
)

func trade(day, symbol string, side Side, price, qty float64) Trade {
	return Trade{
		Date:     date.MustParse(day),
		Symbol:   symbol,
		Side:     side,
		Price:    M(price, TradeCurrency(symbol)),
		Quantity: Q(qty),
	}
}

var testRate = decimal.NewFromFloat(32.0)

func TestReplayTradesLocalBuy(t *testing.T) {
	b := ReplayTrades(M(100000, PoolCurrency), []Trade{
		trade("2024-01-10", "0050", Buy, 150, 100),
	}, testRate)

	if want := M(85000, PoolCurrency); !b.Cash.Equal(want) {
		t.Errorf("Cash = %v, want %v", b.Cash, want)
	}
	pos := b.Position("0050")
	if !pos.Quantity.Equal(Q(100)) {
		t.Errorf("Quantity = %v, want 100", pos.Quantity)
	}
	if want := M(150, PoolCurrency); !pos.AvgCost().Equal(want) {
		t.Errorf("AvgCost = %v, want %v", pos.AvgCost(), want)
	}
}

func TestReplayTradesForeignConversion(t *testing.T) {
	// 10 VT at 100 USD with rate 32 costs 32000 TWD.
	b := ReplayTrades(M(50000, PoolCurrency), []Trade{
		trade("2024-01-10", "VT", Buy, 100, 10),
	}, testRate)

	if want := M(18000, PoolCurrency); !b.Cash.Equal(want) {
		t.Errorf("Cash = %v, want %v", b.Cash, want)
	}
	pos := b.Position("VT")
	if want := M(32000, PoolCurrency); !pos.TotalCost.Equal(want) {
		t.Errorf("TotalCost = %v, want %v", pos.TotalCost, want)
	}
	if want := M(3200, PoolCurrency); !pos.AvgCost().Equal(want) {
		t.Errorf("AvgCost = %v, want %v", pos.AvgCost(), want)
	}
}

func TestReplayTradesAverageCostSale(t *testing.T) {
	// Two buys build an average of 12, the sale relieves at 12 no
	// matter what it fetched.
	b := ReplayTrades(M(10000, PoolCurrency), []Trade{
		trade("2024-01-10", "0050", Buy, 10, 100), // cost 1000
		trade("2024-02-10", "0050", Buy, 14, 100), // cost 1400, avg 12
		trade("2024-03-10", "0050", Sell, 20, 50), // proceeds 1000, relief 600
	}, testRate)

	pos := b.Position("0050")
	if !pos.Quantity.Equal(Q(150)) {
		t.Errorf("Quantity = %v, want 150", pos.Quantity)
	}
	if want := M(1800, PoolCurrency); !pos.TotalCost.Equal(want) {
		t.Errorf("TotalCost = %v, want %v", pos.TotalCost, want)
	}
	if want := M(12, PoolCurrency); !pos.AvgCost().Equal(want) {
		t.Errorf("AvgCost = %v, want %v", pos.AvgCost(), want)
	}
	// 10000 - 1000 - 1400 + 1000
	if want := M(8600, PoolCurrency); !b.Cash.Equal(want) {
		t.Errorf("Cash = %v, want %v", b.Cash, want)
	}
}

func TestReplayTradesDateOrder(t *testing.T) {
	// Insertion order differs from date order: the earlier buy must
	// replay first so the later sale sees its basis.
	b := ReplayTrades(M(10000, PoolCurrency), []Trade{
		trade("2024-03-10", "0050", Sell, 20, 10),
		trade("2024-01-10", "0050", Buy, 10, 100),
	}, testRate)

	pos := b.Position("0050")
	if !pos.Quantity.Equal(Q(90)) {
		t.Errorf("Quantity = %v, want 90", pos.Quantity)
	}
	if want := M(900, PoolCurrency); !pos.TotalCost.Equal(want) {
		t.Errorf("TotalCost = %v, want %v", pos.TotalCost, want)
	}
}

func TestReplayTradesOversell(t *testing.T) {
	b := ReplayTrades(M(10000, PoolCurrency), []Trade{
		trade("2024-01-10", "0050", Buy, 10, 100),
		trade("2024-02-10", "0050", Sell, 10, 150),
	}, testRate)

	pos := b.Position("0050")
	if !pos.Quantity.Equal(Q(-50)) {
		t.Errorf("Quantity = %v, want -50", pos.Quantity)
	}
	if !pos.AvgCost().IsZero() {
		t.Errorf("AvgCost of non-positive position = %v, want 0", pos.AvgCost())
	}
}

func TestReplayTradesSellUnknownSymbol(t *testing.T) {
	b := ReplayTrades(M(1000, PoolCurrency), []Trade{
		trade("2024-01-10", "0050", Sell, 10, 5),
	}, testRate)

	pos := b.Position("0050")
	if !pos.Quantity.Equal(Q(-5)) {
		t.Errorf("Quantity = %v, want -5", pos.Quantity)
	}
	// Proceeds still land in cash.
	if want := M(1050, PoolCurrency); !b.Cash.Equal(want) {
		t.Errorf("Cash = %v, want %v", b.Cash, want)
	}
}
