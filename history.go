package cryptotrack

import "log"

// Recorder appends derived conversions to a per-subject append-only log.
type Recorder struct {
	store *Store
}

// NewRecorder creates a Recorder backed by the given store.
func NewRecorder(store *Store) *Recorder { return &Recorder{store: store} }

// Record appends a derived result to the subject's log. It is a no-op for
// anonymous use: no entry exists after the call when subject is nil. A
// persistence failure leaves the log unchanged and is only logged; the
// caller re-reads the full log rather than trusting an in-memory append.
func (r *Recorder) Record(result *ConversionResult, subject *Subject) {
	if result == nil || subject == nil {
		return
	}
	if err := r.store.AppendConversion(subject.ID, *result); err != nil {
		log.Printf("cannot record conversion for %s: %v", subject.ID, err)
	}
}

// List returns the subject's conversions, newest first.
func (r *Recorder) List(subject *Subject) ([]ConversionResult, error) {
	if subject == nil {
		return nil, nil
	}
	return r.store.Conversions(subject.ID)
}

// Clear removes every entry for that subject.
func (r *Recorder) Clear(subject *Subject) error {
	if subject == nil {
		return nil
	}
	return r.store.ClearConversions(subject.ID)
}
