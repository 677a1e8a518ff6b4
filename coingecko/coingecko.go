// Package coingecko implements the market data provider on top of the
// public CoinGecko HTTP API. No key is required; there is no retry, no
// caching, and no explicit rate-limit handling.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hnath/cryptotrack"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public, unauthenticated API endpoint.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// ListingPageSize is the default page size of the symbol listing, ordered
// by descending market capitalization.
const ListingPageSize = 50

// Client calls the CoinGecko API. It implements cryptotrack.QuoteSource.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for the live service.
func NewClient() *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTP: cryptotrack.NewHTTPClient()}
}

// market is the payload of one /coins/markets entry.
//
//	{
//	  "id": "bitcoin",
//	  "symbol": "btc",
//	  "name": "Bitcoin",
//	  "image": "https://assets.coingecko.com/coins/images/1/large/bitcoin.png",
//	  "current_price": 50000,
//	  "market_cap": 1000000000,
//	  "total_volume": 50000000,
//	  "circulating_supply": 19500000
//	}
type market struct {
	ID                string          `json:"id"`
	Symbol            string          `json:"symbol"`
	Name              string          `json:"name"`
	Image             string          `json:"image"`
	CurrentPrice      decimal.Decimal `json:"current_price"`
	MarketCap         decimal.Decimal `json:"market_cap"`
	TotalVolume       decimal.Decimal `json:"total_volume"`
	CirculatingSupply decimal.Decimal `json:"circulating_supply"`
}

// get performs an HTTP GET and unmarshals the JSON response into data.
// Any failure collapses into cryptotrack.ErrFetch.
func (c *Client) get(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", cryptotrack.ErrFetch, err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", cryptotrack.ErrFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: cannot GET %v/%v: %v", cryptotrack.ErrFetch, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", cryptotrack.ErrFetch, err)
	}
	if err := json.Unmarshal(body, data); err != nil {
		return fmt.Errorf("%w: %v", cryptotrack.ErrFetch, err)
	}
	return nil
}

// Top returns the symbol listing for one page (1-based), ordered by
// descending market capitalization, ListingPageSize entries per page.
func (c *Client) Top(ctx context.Context, page int) ([]cryptotrack.Symbol, error) {
	if page < 1 {
		page = 1
	}
	addr := fmt.Sprintf("%s/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=%d&page=%d",
		c.BaseURL, ListingPageSize, page)

	var markets []market
	if err := c.get(ctx, addr, &markets); err != nil {
		return nil, err
	}

	symbols := make([]cryptotrack.Symbol, 0, len(markets))
	for _, m := range markets {
		symbols = append(symbols, cryptotrack.Symbol{
			ID:      m.ID,
			Name:    m.Name,
			Ticker:  strings.ToUpper(m.Symbol),
			IconRef: m.Image,
		})
	}
	return symbols, nil
}

// Quotes returns one QuoteRecord per known id, via a single batch lookup
// with a comma-joined identifier list. An empty id list short-circuits to
// an empty map without issuing a call.
func (c *Client) Quotes(ctx context.Context, ids []string) (map[string]cryptotrack.QuoteRecord, error) {
	records := make(map[string]cryptotrack.QuoteRecord)
	if len(ids) == 0 {
		return records, nil
	}
	addr := fmt.Sprintf("%s/coins/markets?vs_currency=usd&ids=%s", c.BaseURL, url.QueryEscape(strings.Join(ids, ",")))

	var markets []market
	if err := c.get(ctx, addr, &markets); err != nil {
		return nil, err
	}

	for _, m := range markets {
		records[m.ID] = cryptotrack.QuoteRecord{
			SymbolID:          m.ID,
			Name:              m.Name,
			Ticker:            strings.ToUpper(m.Symbol),
			PriceUSD:          m.CurrentPrice,
			MarketCap:         m.MarketCap,
			Volume24h:         m.TotalVolume,
			CirculatingSupply: m.CirculatingSupply,
		}
	}
	return records, nil
}

// Rate returns how many units of the to currency one unit of the from
// asset is worth, from the simple price endpoint.
func (c *Client) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	to = strings.ToLower(to)
	addr := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=%s", c.BaseURL, url.QueryEscape(from), url.QueryEscape(to))

	prices := make(map[string]map[string]decimal.Decimal)
	if err := c.get(ctx, addr, &prices); err != nil {
		return decimal.Zero, err
	}

	rate, ok := prices[from][to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no rate for %s/%s", cryptotrack.ErrFetch, from, to)
	}
	return rate, nil
}
