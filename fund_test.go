package fundpool

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// testRecords builds a small but complete pool: two partners, a local
// and a foreign position, prices and a rate.
func testRecords() *Records {
	return &Records{
		Partners: []string{"alice", "bob"},
		Contributions: []Contribution{
			contrib("2024-01-02", "alice", 100000),
			contrib("2024-01-02", "bob", 60000),
		},
		Trades: []Trade{
			trade("2024-01-10", "0050", Buy, 150, 200), // 30000 TWD
			trade("2024-01-15", "VT", Buy, 100, 10),    // 32000 TWD at rate 32
		},
		Prices: PriceOverrides{
			FXTicker: decimal.NewFromFloat(32),
			"0050":   decimal.NewFromFloat(180),
		},
	}
}

func TestComputeTotals(t *testing.T) {
	s := Compute(testRecords())

	// 160000 - 30000 - 32000
	if want := M(98000, PoolCurrency); !s.Book.Cash.Equal(want) {
		t.Errorf("Cash = %v, want %v", s.Book.Cash, want)
	}
	// 0050 at 180: 36000. VT unquoted: break-even 32000.
	if want := M(68000, PoolCurrency); !s.MarketValue.Equal(want) {
		t.Errorf("MarketValue = %v, want %v", s.MarketValue, want)
	}
	if want := M(166000, PoolCurrency); !s.TotalValue.Equal(want) {
		t.Errorf("TotalValue = %v, want %v", s.TotalValue, want)
	}
	// 16000 units at bootstrap, NAV 166000/16000 = 10.375
	if !s.Units.TotalUnits.Equal(Q(16000)) {
		t.Errorf("TotalUnits = %v, want 16000", s.Units.TotalUnits)
	}
	if want := M(10.375, PoolCurrency); !s.UnitPrice.Equal(want) {
		t.Errorf("UnitPrice = %v, want %v", s.UnitPrice, want)
	}
}

func TestComputePartnerEquity(t *testing.T) {
	s := Compute(testRecords())
	if len(s.Partners) != 2 {
		t.Fatalf("got %d partner rows, want 2", len(s.Partners))
	}

	alice := s.Partners[0]
	if want := M(103750, PoolCurrency); !alice.Equity.Equal(want) {
		t.Errorf("alice Equity = %v, want %v", alice.Equity, want)
	}
	if want := M(3750, PoolCurrency); !alice.PL.Equal(want) {
		t.Errorf("alice PL = %v, want %v", alice.PL, want)
	}
	if !alice.Return.Equal(3.75) {
		t.Errorf("alice Return = %v, want 3.75%%", alice.Return)
	}
	if !alice.Share.Equal(62.5) {
		t.Errorf("alice Share = %v, want 62.5%%", alice.Share)
	}

	// Equity is conserved: partner equities sum to the pool value.
	sum := M(0, PoolCurrency)
	for _, p := range s.Partners {
		sum = sum.Add(p.Equity)
	}
	if !sum.Equal(s.TotalValue) {
		t.Errorf("sum of equities = %v, want %v", sum, s.TotalValue)
	}
}

func TestComputeAllocation(t *testing.T) {
	s := Compute(testRecords())
	if len(s.Allocation) != 3 {
		t.Fatalf("got %d slices, want 3", len(s.Allocation))
	}
	if s.Allocation[0].Label != CashLabel {
		t.Errorf("first slice = %q, want cash", s.Allocation[0].Label)
	}
	var shares Percent
	for _, a := range s.Allocation {
		if !a.Value.IsPositive() {
			t.Errorf("slice %q has non-positive value %v", a.Label, a.Value)
		}
		shares += a.Share
	}
	if !shares.Equal(100) {
		t.Errorf("shares sum to %v, want 100%%", shares)
	}
}

func TestComputeIdempotent(t *testing.T) {
	r := testRecords()
	a, b := Compute(r), Compute(r)

	if !a.TotalValue.Equal(b.TotalValue) {
		t.Errorf("TotalValue differs: %v vs %v", a.TotalValue, b.TotalValue)
	}
	if !a.UnitPrice.Equal(b.UnitPrice) {
		t.Errorf("UnitPrice differs: %v vs %v", a.UnitPrice, b.UnitPrice)
	}
	if !a.Units.TotalUnits.Equal(b.Units.TotalUnits) {
		t.Errorf("TotalUnits differs: %v vs %v", a.Units.TotalUnits, b.Units.TotalUnits)
	}
}

func TestComputeUnknownPartnerExcludedEverywhere(t *testing.T) {
	r := testRecords()
	r.Contributions = append(r.Contributions, contrib("2024-02-01", "mallory", 999999))
	s := Compute(r)

	if want := M(160000, PoolCurrency); !s.Capital.Total.Equal(want) {
		t.Errorf("Total = %v, want %v", s.Capital.Total, want)
	}
	if !s.Units.TotalUnits.Equal(Q(16000)) {
		t.Errorf("TotalUnits = %v, want 16000", s.Units.TotalUnits)
	}
	if !s.Units.UnitsOf("mallory").IsZero() {
		t.Error("unknown partner must hold no units")
	}
}

func TestComputeEmptyRecords(t *testing.T) {
	s := Compute(&Records{})
	if !s.TotalValue.IsZero() {
		t.Errorf("TotalValue = %v, want zero", s.TotalValue)
	}
	if !s.UnitPrice.Equal(BootstrapUnitPrice) {
		t.Errorf("UnitPrice = %v, want bootstrap", s.UnitPrice)
	}
	if len(s.Allocation) != 0 {
		t.Errorf("got %d slices, want none", len(s.Allocation))
	}
}

func TestSnapshotNow(t *testing.T) {
	s := Compute(testRecords())
	now := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)
	snapshot := s.SnapshotNow(now)

	if got := snapshot.Date.String(); got != "2024-03-01" {
		t.Errorf("Date = %q, want 2024-03-01", got)
	}
	if !snapshot.Total.Equal(s.TotalValue) {
		t.Errorf("Total = %v, want %v", snapshot.Total, s.TotalValue)
	}
	if !snapshot.Partners["alice"].Equal(M(103750, PoolCurrency)) {
		t.Errorf("alice = %v, want 103750", snapshot.Partners["alice"])
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	// Appending today's snapshot and recomputing must not change the
	// units already issued.
	r := testRecords()
	before := Compute(r)
	now := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)
	r.History = append(r.History, before.SnapshotNow(now))

	after := Compute(r)
	if !after.Units.TotalUnits.Equal(before.Units.TotalUnits) {
		t.Errorf("TotalUnits changed: %v vs %v", after.Units.TotalUnits, before.Units.TotalUnits)
	}
	if !after.UnitPrice.Equal(before.UnitPrice) {
		t.Errorf("UnitPrice changed: %v vs %v", after.UnitPrice, before.UnitPrice)
	}
}
