package cryptotrack

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deriver combines a selection with fetched quotes to produce normalized,
// display-ready records, and turns a (from, to, amount) triple into a
// ConversionResult.
//
// A derivation is recomputed purely on a change of its inputs. Overlapping
// derivations for the same key are disambiguated with a monotonically
// increasing sequence number: a response belonging to a superseded request
// is discarded instead of overwriting a fresher one.
type Deriver struct {
	source QuoteSource

	mu     sync.Mutex
	next   uint64
	issued map[string]uint64 // last issued sequence per derivation key

	table      []QuoteRecord
	conversion *ConversionResult
}

// NewDeriver creates a Deriver reading from the given source.
func NewDeriver(source QuoteSource) *Deriver {
	return &Deriver{source: source, issued: make(map[string]uint64)}
}

// derivation keys. Tables share one key; conversions are keyed per pair so
// that switching pairs does not cancel an unrelated refresh.
const keyTable = "table"

func keyConversion(from, to string) string { return "conversion/" + from + "/" + to }

// issue registers a new request for key and returns its sequence number.
func (d *Deriver) issue(key string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.next++
	d.issued[key] = d.next
	return d.next
}

// current reports whether seq is still the latest issued request for key.
func (d *Deriver) current(key string, seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.issued[key] == seq
}

// DeriveTable fetches quotes for the selection and returns exactly one
// QuoteRecord per distinct selected id, in selection order. An empty
// selection yields an empty table without issuing a call.
//
// The result is also retained as the deriver's displayed table, unless a
// newer table derivation was issued while this one was in flight.
func (d *Deriver) DeriveTable(ctx context.Context, selection *Selection) ([]QuoteRecord, error) {
	if selection == nil || selection.Len() == 0 {
		d.apply(keyTable, d.issue(keyTable), func() { d.table = nil })
		return nil, nil
	}

	seq := d.issue(keyTable)
	quotes, err := d.source.Quotes(ctx, selection.IDs())
	if err != nil {
		return nil, err
	}

	records := make([]QuoteRecord, 0, selection.Len())
	for _, sym := range selection.Symbols() {
		if q, ok := quotes[sym.ID]; ok {
			records = append(records, q)
		}
	}

	d.apply(keyTable, seq, func() { d.table = records })
	return records, nil
}

// DeriveConversion converts amount units of from into to. It returns
// (nil, nil) when amount is empty or fails to parse as a finite number, or
// when no positive rate is available: malformed input is "no result yet",
// not an error. Only provider failures return an error.
//
// A non-nil result for a still-current request is retained as the
// deriver's displayed conversion.
func (d *Deriver) DeriveConversion(ctx context.Context, from, to, amount string) (*ConversionResult, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, nil
	}

	key := keyConversion(from, to)
	seq := d.issue(key)

	rate, err := d.source.Rate(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if !rate.IsPositive() {
		return nil, nil
	}

	result := &ConversionResult{
		ID:         uuid.NewString(),
		From:       from,
		To:         to,
		Amount:     parsed,
		Rate:       rate,
		Result:     parsed.Mul(rate),
		RecordedAt: time.Now(),
	}

	d.apply(key, seq, func() { d.conversion = result })
	return result, nil
}

// apply installs a derivation result, discarding it when the request was
// superseded while in flight.
func (d *Deriver) apply(key string, seq uint64, install func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.issued[key] != seq {
		return
	}
	install()
}

// Table returns the most recently derived table that was still current
// when its response resolved.
func (d *Deriver) Table() []QuoteRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.table
}

// Conversion returns the most recently derived conversion that was still
// current when its response resolved, or nil.
func (d *Deriver) Conversion() *ConversionResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.conversion
}
