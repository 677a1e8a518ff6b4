package coingecko

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/hnath/cryptotrack"
)

const marketsPayload = `[
  {"id": "bitcoin", "symbol": "btc", "name": "Bitcoin",
   "image": "https://assets.coingecko.com/coins/images/1/large/bitcoin.png",
   "current_price": 50000, "market_cap": 1000000000,
   "total_volume": 50000000, "circulating_supply": 19500000},
  {"id": "ethereum", "symbol": "eth", "name": "Ethereum",
   "image": "https://assets.coingecko.com/coins/images/279/large/ethereum.png",
   "current_price": 3000.25, "market_cap": 360000000,
   "total_volume": 12000000, "circulating_supply": 120000000}
]`

// testClient returns a Client pointed at a stub server, and the query
// values of the last request received.
func testClient(t *testing.T, payload string) (*Client, *url.Values) {
	t.Helper()
	last := &url.Values{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*last = r.URL.Query()
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return &Client{BaseURL: srv.URL, HTTP: srv.Client()}, last
}

func TestTop(t *testing.T) {
	c, query := testClient(t, marketsPayload)

	symbols, err := c.Top(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(symbols) != 2 {
		t.Fatalf("len = %d, want 2", len(symbols))
	}
	if symbols[0].ID != "bitcoin" || symbols[0].Ticker != "BTC" || symbols[0].Name != "Bitcoin" {
		t.Errorf("symbols[0] = %+v", symbols[0])
	}
	if symbols[0].IconRef == "" {
		t.Error("IconRef not carried over")
	}
	if query.Get("order") != "market_cap_desc" || query.Get("per_page") != "50" {
		t.Errorf("listing query = %v", *query)
	}
}

func TestQuotes(t *testing.T) {
	c, query := testClient(t, marketsPayload)

	records, err := c.Quotes(context.Background(), []string{"bitcoin", "ethereum"})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	btc := records["bitcoin"]
	if btc.Ticker != "BTC" || btc.PriceUSD.String() != "50000" {
		t.Errorf("bitcoin record = %+v", btc)
	}
	if eth := records["ethereum"]; eth.PriceUSD.String() != "3000.25" {
		t.Errorf("ethereum price = %s, want 3000.25", eth.PriceUSD)
	}
	// one batch lookup with a comma-joined id list.
	if query.Get("ids") != "bitcoin,ethereum" {
		t.Errorf("ids = %q, want comma-joined batch", query.Get("ids"))
	}
}

func TestQuotesEmptyIDs(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()
	c := &Client{BaseURL: srv.URL, HTTP: srv.Client()}

	records, err := c.Quotes(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("records = %v, want empty", records)
	}
	if calls != 0 {
		t.Errorf("empty id list issued %d requests, want 0", calls)
	}
}

func TestRate(t *testing.T) {
	c, query := testClient(t, `{"bitcoin": {"usd": 50000}}`)

	rate, err := c.Rate(context.Background(), "bitcoin", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if rate.String() != "50000" {
		t.Errorf("rate = %s, want 50000", rate)
	}
	if query.Get("ids") != "bitcoin" || query.Get("vs_currencies") != "usd" {
		t.Errorf("rate query = %v", *query)
	}
}

func TestRateUnknownPair(t *testing.T) {
	c, _ := testClient(t, `{}`)
	_, err := c.Rate(context.Background(), "unobtainium", "usd")
	if !errors.Is(err, cryptotrack.ErrFetch) {
		t.Errorf("err = %v, want ErrFetch", err)
	}
}

func TestFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()
	c := &Client{BaseURL: srv.URL, HTTP: srv.Client()}

	if _, err := c.Top(context.Background(), 1); !errors.Is(err, cryptotrack.ErrFetch) {
		t.Errorf("Top err = %v, want ErrFetch", err)
	}
	if _, err := c.Quotes(context.Background(), []string{"bitcoin"}); !errors.Is(err, cryptotrack.ErrFetch) {
		t.Errorf("Quotes err = %v, want ErrFetch", err)
	}
}
