// Package exchangerate implements the foreign exchange provider on top of
// the public exchangerate-api v4 endpoint, which returns a mapping from
// currency code to USD-relative rate.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/hnath/cryptotrack"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public, unauthenticated API endpoint.
const DefaultBaseURL = "https://api.exchangerate-api.com/v4"

// Client calls the exchangerate API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for the live service.
func NewClient() *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTP: cryptotrack.NewHTTPClient()}
}

/*
	{
	    "base": "USD",
	    "date": "2025-09-01",
	    "rates": { "USD": 1, "EUR": 0.92, "INR": 83.1 }
	}
*/
type latest struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Rates returns the mapping from lower-cased currency code to USD-relative
// rate.
func (c *Client) Rates(ctx context.Context) (map[string]decimal.Decimal, error) {
	addr := c.BaseURL + "/latest/USD"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptotrack.ErrFetch, err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptotrack.ErrFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: cannot GET %v/%v: %v", cryptotrack.ErrFetch, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptotrack.ErrFetch, err)
	}

	var payload latest
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", cryptotrack.ErrFetch, err)
	}

	rates := make(map[string]decimal.Decimal, len(payload.Rates))
	for code, rate := range payload.Rates {
		rates[strings.ToLower(code)] = rate
	}
	return rates, nil
}

// Codes returns the known currency codes, lower-cased and sorted.
func (c *Client) Codes(ctx context.Context) ([]string, error) {
	rates, err := c.Rates(ctx)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}
