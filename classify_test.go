package fundpool

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		symbol string
		want   Currency
	}{
		{"VT", Foreign},
		{"VOO", Foreign},
		{"QQQ", Foreign},
		{"0050", Local},
		{"2330", Local},
		{"", Local},
		{"vt", Local},
		{"BRK.B", Local},
		{"0050B", Local},
		{"USDTWD", Foreign}, // the FX ticker itself looks foreign, callers must filter it
	}
	for _, tt := range tests {
		if got := Classify(tt.symbol); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.symbol, got, tt.want)
		}
	}
}

func TestTradeCurrency(t *testing.T) {
	if got := TradeCurrency("VT"); got != "USD" {
		t.Errorf("TradeCurrency(VT) = %q, want USD", got)
	}
	if got := TradeCurrency("0050"); got != "TWD" {
		t.Errorf("TradeCurrency(0050) = %q, want TWD", got)
	}
}
