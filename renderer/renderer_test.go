package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/fundpool"
	"github.com/etnz/fundpool/date"
	"github.com/shopspring/decimal"
)

func testState(t *testing.T) *fundpool.State {
	t.Helper()
	return fundpool.Compute(&fundpool.Records{
		Partners: []string{"alice", "bob"},
		Contributions: []fundpool.Contribution{
			{ID: "c1", Date: date.MustParse("2024-01-02"), Partner: "alice", Amount: fundpool.M(100000, fundpool.PoolCurrency)},
			{ID: "c2", Date: date.MustParse("2024-01-02"), Partner: "bob", Amount: fundpool.M(60000, fundpool.PoolCurrency)},
		},
		Trades: []fundpool.Trade{
			{ID: "t1", Date: date.MustParse("2024-01-10"), Symbol: "0050", Side: fundpool.Buy, Price: fundpool.M(150, "TWD"), Quantity: fundpool.Q(200)},
			{ID: "t2", Date: date.MustParse("2024-01-15"), Symbol: "VT", Side: fundpool.Buy, Price: fundpool.M(100, "USD"), Quantity: fundpool.Q(10)},
		},
		Prices: fundpool.PriceOverrides{
			fundpool.FXTicker: decimal.NewFromFloat(32),
			"0050":            decimal.NewFromFloat(180),
		},
		History: []fundpool.AssetSnapshot{
			{Date: date.MustParse("2024-05-31"), Time: date.MustParse("2024-05-31").At(18, 0, 0), Total: fundpool.M(150000, fundpool.PoolCurrency)},
		},
	})
}

func TestDashboard(t *testing.T) {
	out := Dashboard(testState(t))
	for _, want := range []string{"# Pool Dashboard", "## Partners", "## Allocation", "NAV per Unit", "alice", "Cash"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard misses %q:\n%s", want, out)
		}
	}
}

func TestDashboardAlignsColumns(t *testing.T) {
	out := Dashboard(testState(t))
	if !strings.Contains(out, ":-") {
		t.Errorf("tables must left-align their label column:\n%s", out)
	}
	if !strings.Contains(out, "-:") {
		t.Errorf("tables must right-align their numeric columns:\n%s", out)
	}
}

func TestHoldingsFlagsBreakEven(t *testing.T) {
	out := Holdings(testState(t))
	if !strings.Contains(out, "VT") || !strings.Contains(out, "(cost)") {
		t.Errorf("holdings must flag the unquoted VT price:\n%s", out)
	}
	if !strings.Contains(out, "0050") {
		t.Errorf("holdings misses 0050:\n%s", out)
	}
}

func TestContributions(t *testing.T) {
	out := Contributions(testState(t))
	if !strings.Contains(out, "c1") || !strings.Contains(out, "2024-01-02") {
		t.Errorf("contributions listing incomplete:\n%s", out)
	}
}

func TestTrades(t *testing.T) {
	out := Trades([]fundpool.Trade{
		{ID: "t1", Date: date.MustParse("2024-01-10"), Symbol: "0050", Side: fundpool.Sell, Price: fundpool.M(150, "TWD"), Quantity: fundpool.Q(200)},
	})
	if !strings.Contains(out, "SELL") {
		t.Errorf("trades listing misses the side:\n%s", out)
	}
}

func TestHistory(t *testing.T) {
	out := History(testState(t))
	if !strings.Contains(out, "2024-05-31") {
		t.Errorf("history misses the snapshot date:\n%s", out)
	}
}

func TestPartners(t *testing.T) {
	out := Partners(testState(t))
	if !strings.Contains(out, "bob") {
		t.Errorf("partners report misses bob:\n%s", out)
	}
}
