package cryptotrack

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RiskTolerance is the subject's declared appetite for risk.
type RiskTolerance string

const (
	RiskLow    RiskTolerance = "Low"
	RiskMedium RiskTolerance = "Medium"
	RiskHigh   RiskTolerance = "High"
)

// ParseRiskTolerance parses a string into a RiskTolerance.
func ParseRiskTolerance(s string) (RiskTolerance, error) {
	switch strings.ToLower(s) {
	case "low":
		return RiskLow, nil
	case "medium":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	default:
		return "", fmt.Errorf("unknown risk tolerance: %q", s)
	}
}

// Profile is the per-subject preference record, mirrored to the document
// store. Revision implements the conditional write: a save carrying a
// revision older than the stored one is rejected instead of overwriting.
type Profile struct {
	FavoriteCoins  string   `json:"favoriteCoins,omitempty"`
	Portfolio      string   `json:"portfolio,omitempty"`
	InvestmentGoal string   `json:"investmentGoal,omitempty"`
	RiskTolerance  string   `json:"riskTolerance,omitempty"`
	SelectedCoins  []Symbol `json:"selectedCoins,omitempty"`
	Revision       uint64   `json:"revision"`
}

// Selection returns the mirrored selection as an ordered set.
func (p *Profile) Selection() *Selection {
	return NewSelection(p.SelectedCoins...)
}

// SetSelection mirrors a selection into the profile.
func (p *Profile) SetSelection(s *Selection) {
	p.SelectedCoins = s.Symbols()
}

// PortfolioEntry is one weighted position parsed from the portfolio string.
type PortfolioEntry struct {
	Name   string
	Weight decimal.Decimal
}

// ParsePortfolio parses a portfolio string like "BTC:40,ETH:30" into
// weighted entries. A malformed entry fails the whole parse; the caller
// reports it inline and keeps the previous state.
func ParsePortfolio(s string) ([]PortfolioEntry, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var entries []PortfolioEntry
	for _, part := range strings.Split(s, ",") {
		name, weight, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid portfolio entry %q: use NAME:WEIGHT, e.g. BTC:40,ETH:60", strings.TrimSpace(part))
		}
		value, err := decimal.NewFromString(strings.TrimSpace(weight))
		if err != nil {
			return nil, fmt.Errorf("invalid portfolio weight in %q: %w", strings.TrimSpace(part), err)
		}
		if value.IsNegative() {
			return nil, fmt.Errorf("invalid portfolio weight in %q: must not be negative", strings.TrimSpace(part))
		}
		entries = append(entries, PortfolioEntry{Name: strings.TrimSpace(name), Weight: value})
	}
	return entries, nil
}

// Shares returns for each entry its percentage share of the total weight.
// Entries keep their order. A zero total yields zero shares.
func Shares(entries []PortfolioEntry) []decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Weight)
	}
	shares := make([]decimal.Decimal, len(entries))
	if total.IsZero() {
		return shares
	}
	hundred := decimal.NewFromInt(100)
	for i, e := range entries {
		shares[i] = e.Weight.Mul(hundred).Div(total).Round(2)
	}
	return shares
}
