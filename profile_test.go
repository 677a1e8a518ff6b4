package cryptotrack

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePortfolio(t *testing.T) {
	tests := []struct {
		input string
		want  []PortfolioEntry
		err   bool
	}{
		{"BTC:40,ETH:30", []PortfolioEntry{
			{Name: "BTC", Weight: decimal.NewFromInt(40)},
			{Name: "ETH", Weight: decimal.NewFromInt(30)},
		}, false},
		{"BTC: 40, ETH: 60", []PortfolioEntry{
			{Name: "BTC", Weight: decimal.NewFromInt(40)},
			{Name: "ETH", Weight: decimal.NewFromInt(60)},
		}, false},
		{"", nil, false},
		{"BTC", nil, true},
		{"BTC:abc", nil, true},
		{"BTC:-5", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePortfolio(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParsePortfolio(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if tt.err {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Name != tt.want[i].Name || !got[i].Weight.Equal(tt.want[i].Weight) {
					t.Errorf("entry %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestShares(t *testing.T) {
	entries, err := ParsePortfolio("BTC:40,ETH:40,SOL:20")
	if err != nil {
		t.Fatal(err)
	}
	shares := Shares(entries)
	want := []string{"40", "40", "20"}
	for i, s := range shares {
		if s.String() != want[i] {
			t.Errorf("share %d = %s, want %s", i, s, want[i])
		}
	}
}

func TestSharesUnnormalizedWeights(t *testing.T) {
	// weights need not sum to 100; shares are relative.
	entries, _ := ParsePortfolio("BTC:1,ETH:3")
	shares := Shares(entries)
	if shares[0].String() != "25" || shares[1].String() != "75" {
		t.Errorf("shares = %s, %s; want 25, 75", shares[0], shares[1])
	}
}

func TestSharesZeroTotal(t *testing.T) {
	entries, _ := ParsePortfolio("BTC:0,ETH:0")
	for i, s := range Shares(entries) {
		if !s.IsZero() {
			t.Errorf("share %d = %s, want 0", i, s)
		}
	}
}

func TestParseRiskTolerance(t *testing.T) {
	tests := []struct {
		input string
		want  RiskTolerance
		err   bool
	}{
		{"low", RiskLow, false},
		{"Medium", RiskMedium, false},
		{"HIGH", RiskHigh, false},
		{"extreme", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRiskTolerance(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseRiskTolerance(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRiskTolerance(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestProfileSelectionMirror(t *testing.T) {
	p := &Profile{}
	p.SetSelection(NewSelection(btc, eth))
	if got := p.Selection().IDs(); len(got) != 2 || got[0] != "bitcoin" {
		t.Errorf("mirrored selection = %v", got)
	}
}
