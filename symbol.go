package cryptotrack

// Symbol identifies a tradable asset or fiat currency, with the display
// metadata returned by the market data provider.
type Symbol struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Ticker  string `json:"ticker"`
	IconRef string `json:"iconRef,omitempty"`
}

// Selection is an ordered set of Symbols chosen by the current subject.
// Insertion order is significant for display; membership is unique by ID.
type Selection struct {
	symbols []Symbol
}

// NewSelection returns a Selection holding the given symbols in order,
// dropping duplicates by ID.
func NewSelection(symbols ...Symbol) *Selection {
	s := &Selection{}
	for _, sym := range symbols {
		if !s.Has(sym.ID) {
			s.symbols = append(s.symbols, sym)
		}
	}
	return s
}

// Has reports whether a symbol with that id is selected.
func (s *Selection) Has(id string) bool {
	for _, sym := range s.symbols {
		if sym.ID == id {
			return true
		}
	}
	return false
}

// Toggle flips the membership of the given symbol: absent symbols are
// appended, present ones are removed. Toggling the same symbol twice
// returns the selection to its prior membership and ordering.
// It reports whether the symbol is selected after the call.
func (s *Selection) Toggle(sym Symbol) bool {
	for i, existing := range s.symbols {
		if existing.ID == sym.ID {
			s.symbols = append(s.symbols[:i], s.symbols[i+1:]...)
			return false
		}
	}
	s.symbols = append(s.symbols, sym)
	return true
}

// Symbols returns the selected symbols in insertion order.
func (s *Selection) Symbols() []Symbol {
	out := make([]Symbol, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// IDs returns the selected symbol ids in insertion order.
func (s *Selection) IDs() []string {
	ids := make([]string, 0, len(s.symbols))
	for _, sym := range s.symbols {
		ids = append(ids, sym.ID)
	}
	return ids
}

// Len returns the number of selected symbols.
func (s *Selection) Len() int { return len(s.symbols) }
