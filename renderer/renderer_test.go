package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/hnath/cryptotrack"
	"github.com/shopspring/decimal"
)

func TestComparison(t *testing.T) {
	out := Comparison("Watchlist", []cryptotrack.QuoteRecord{
		{SymbolID: "bitcoin", Name: "Bitcoin", Ticker: "BTC",
			PriceUSD:  decimal.RequireFromString("50000"),
			MarketCap: decimal.RequireFromString("1000000000")},
	})
	for _, want := range []string{"# Watchlist", "Bitcoin (BTC)", "$50000.00", "Price (USD)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Comparison output misses %q:\n%s", want, out)
		}
	}
}

func TestComparisonEmpty(t *testing.T) {
	out := Comparison("Watchlist", nil)
	if !strings.Contains(out, "No coins selected.") {
		t.Errorf("empty comparison output:\n%s", out)
	}
}

func TestConversion(t *testing.T) {
	out := Conversion(&cryptotrack.ConversionResult{
		From: "bitcoin", To: "usd",
		Amount: decimal.RequireFromString("2"),
		Rate:   decimal.RequireFromString("50000"),
		Result: decimal.RequireFromString("100000"),
	})
	for _, want := range []string{"# Converted Amount", "2 bitcoin", "$100,000.00", "1 bitcoin = 50000 USD"} {
		if !strings.Contains(out, want) {
			t.Errorf("Conversion output misses %q:\n%s", want, out)
		}
	}
}

func TestHistory(t *testing.T) {
	entries := []cryptotrack.ConversionResult{{
		From: "ethereum", To: "usd",
		Amount:     decimal.RequireFromString("2"),
		Rate:       decimal.RequireFromString("3000"),
		Result:     decimal.RequireFromString("6000"),
		RecordedAt: time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
	}}
	out := History(entries)
	for _, want := range []string{"# Previous Conversions", "2026-09-01 10:30", "6000.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("History output misses %q:\n%s", want, out)
		}
	}

	if out := History(nil); !strings.Contains(out, "No conversions recorded.") {
		t.Errorf("empty history output:\n%s", out)
	}
}

func TestListingMarksSelection(t *testing.T) {
	symbols := []cryptotrack.Symbol{
		{ID: "bitcoin", Name: "Bitcoin", Ticker: "BTC"},
		{ID: "ethereum", Name: "Ethereum", Ticker: "ETH"},
	}
	selection := cryptotrack.NewSelection(symbols[0])
	out := Listing(symbols, selection)

	lines := strings.Split(out, "\n")
	var btcLine, ethLine string
	for _, l := range lines {
		if strings.Contains(l, "bitcoin") {
			btcLine = l
		}
		if strings.Contains(l, "ethereum") {
			ethLine = l
		}
	}
	if !strings.Contains(btcLine, "✓") {
		t.Errorf("selected bitcoin not marked: %q", btcLine)
	}
	if strings.Contains(ethLine, "✓") {
		t.Errorf("unselected ethereum marked: %q", ethLine)
	}
}

func TestBreakdown(t *testing.T) {
	entries, err := cryptotrack.ParsePortfolio("BTC:40,ETH:60")
	if err != nil {
		t.Fatal(err)
	}
	out := Breakdown(entries)
	for _, want := range []string{"# Portfolio Breakdown", "BTC", "40%", "60%"} {
		if !strings.Contains(out, want) {
			t.Errorf("Breakdown output misses %q:\n%s", want, out)
		}
	}

	if out := Breakdown(nil); !strings.Contains(out, "No portfolio set") {
		t.Errorf("empty breakdown output:\n%s", out)
	}
}

func TestPosts(t *testing.T) {
	posts := []cryptotrack.Post{{
		ID: "p1", Title: "Why BTC", Content: "Because halving.",
		Author: cryptotrack.Author{Name: "Alice"},
		Likes:  2, Upvotes: 1,
		Comments: []cryptotrack.Comment{{Author: cryptotrack.Author{Name: "Bob"}, Text: "Agreed."}},
	}}
	out := Posts(posts)
	for _, want := range []string{"Why BTC by Alice", "Because halving.", "2 likes", "Bob: Agreed."} {
		if !strings.Contains(out, want) {
			t.Errorf("Posts output misses %q:\n%s", want, out)
		}
	}

	if out := Posts(nil); !strings.Contains(out, "No posts yet.") {
		t.Errorf("empty posts output:\n%s", out)
	}
}

func TestEvents(t *testing.T) {
	day := cryptotrack.NewDate(2026, time.September, 1)
	out := Events(day, []cryptotrack.Event{{Title: "ETH meetup", Description: "Bring laptops.", Link: "https://example.com"}})
	for _, want := range []string{"Events on 2026-09-01", "ETH meetup", "Bring laptops.", "https://example.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("Events output misses %q:\n%s", want, out)
		}
	}

	if out := Events(day, nil); !strings.Contains(out, "No events available.") {
		t.Errorf("empty events output:\n%s", out)
	}
}

func TestNews(t *testing.T) {
	out := News([]cryptotrack.NewsItem{{Title: "Bitcoin breaks out", Source: "CoinDesk", Body: "Up only.", URL: "https://example.com/1"}})
	for _, want := range []string{"# Latest News", "Bitcoin breaks out", "Source: CoinDesk", "https://example.com/1"} {
		if !strings.Contains(out, want) {
			t.Errorf("News output misses %q:\n%s", want, out)
		}
	}
}
