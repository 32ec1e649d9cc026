package fundpool

import (
	"testing"

	"github.com/etnz/fundpool/date"
)

func contrib(day, partner string, amount float64) Contribution {
	return Contribution{
		Date:    date.MustParse(day),
		Partner: partner,
		Amount:  M(amount, PoolCurrency),
	}
}

func TestSummarizeCapital(t *testing.T) {
	partners := []string{"alice", "bob"}
	contributions := []Contribution{
		contrib("2024-01-02", "alice", 100000),
		contrib("2024-02-01", "bob", 50000),
		contrib("2024-03-15", "alice", 25000),
	}
	s := SummarizeCapital(partners, contributions)

	if want := M(175000, PoolCurrency); !s.Total.Equal(want) {
		t.Errorf("Total = %v, want %v", s.Total, want)
	}
	if want := M(125000, PoolCurrency); !s.ByPartner["alice"].Equal(want) {
		t.Errorf("alice = %v, want %v", s.ByPartner["alice"], want)
	}
	if want := M(50000, PoolCurrency); !s.ByPartner["bob"].Equal(want) {
		t.Errorf("bob = %v, want %v", s.ByPartner["bob"], want)
	}
}

func TestSummarizeCapitalUnknownPartner(t *testing.T) {
	partners := []string{"alice"}
	contributions := []Contribution{
		contrib("2024-01-02", "alice", 100000),
		contrib("2024-01-03", "mallory", 999999), // not on the roster
	}
	s := SummarizeCapital(partners, contributions)

	if want := M(100000, PoolCurrency); !s.Total.Equal(want) {
		t.Errorf("Total = %v, want %v", s.Total, want)
	}
	if _, ok := s.ByPartner["mallory"]; ok {
		t.Error("unknown partner must not appear in the summary")
	}
}

func TestSummarizeCapitalEmptyRoster(t *testing.T) {
	s := SummarizeCapital(nil, []Contribution{contrib("2024-01-02", "alice", 100)})
	if !s.Total.IsZero() {
		t.Errorf("Total = %v, want zero", s.Total)
	}
}

func TestSummarizeCapitalZeroContribPartner(t *testing.T) {
	s := SummarizeCapital([]string{"carol"}, nil)
	sum, ok := s.ByPartner["carol"]
	if !ok {
		t.Fatal("declared partner missing from summary")
	}
	if !sum.IsZero() {
		t.Errorf("carol = %v, want zero", sum)
	}
}
