package cryptotrack

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrFetch is the single condition surfaced for any provider failure:
// network error, malformed payload, or unknown symbol. Callers do not
// distinguish causes.
var ErrFetch = errors.New("fetch failed")

// QuoteRecord is a snapshot of market data for one symbol. Records are
// recreated wholesale on every refresh, never partially updated.
type QuoteRecord struct {
	SymbolID          string          `json:"symbolId"`
	Name              string          `json:"name"`
	Ticker            string          `json:"ticker"`
	PriceUSD          decimal.Decimal `json:"priceUsd"`
	MarketCap         decimal.Decimal `json:"marketCap"`
	Volume24h         decimal.Decimal `json:"volume24h"`
	CirculatingSupply decimal.Decimal `json:"circulatingSupply"`
}

// ConversionResult is one computed conversion, persisted as a log entry.
// Once written it is never mutated; it is deletable only as a full-log
// clear, never individually.
type ConversionResult struct {
	ID         string          `json:"id"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Amount     decimal.Decimal `json:"amount"`
	Rate       decimal.Decimal `json:"rate"`
	Result     decimal.Decimal `json:"result"`
	RecordedAt time.Time       `json:"recordedAt"`
}

// QuoteSource wraps the outbound calls to the market data and foreign
// exchange providers. Implementations perform no retry and no caching;
// each call is a fresh round trip.
type QuoteSource interface {
	// Quotes returns one QuoteRecord per known id. An empty id list
	// short-circuits to an empty map without issuing a call.
	Quotes(ctx context.Context, ids []string) (map[string]QuoteRecord, error)
	// Rate returns how many units of to one unit of from is worth.
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}
