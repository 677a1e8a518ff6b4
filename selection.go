package cryptotrack

import (
	"errors"
	"log"
)

// SelectionStore owns the in-session selection and mirrors it to the
// subject's profile record.
//
// The local toggle is synchronous; the mirror is best-effort: a mirror
// failure does not roll back the local toggle and is only logged. The
// mirror write is revision-checked, so a concurrent writer (another
// terminal on the same data directory) makes this writer re-read and
// reapply instead of silently overwriting.
type SelectionStore struct {
	store     *Store
	selection *Selection
	subject   *Subject
}

// NewSelectionStore builds the store for the session. For an authenticated
// subject the initial selection is the profile's persisted mirror; for an
// anonymous session it starts empty.
func NewSelectionStore(store *Store, subject *Subject) (*SelectionStore, error) {
	s := &SelectionStore{store: store, subject: subject, selection: NewSelection()}
	if subject != nil {
		profile, err := store.Profile(subject.ID)
		if err != nil {
			return nil, err
		}
		s.selection = profile.Selection()
	}
	return s, nil
}

// Selection returns the current selection.
func (s *SelectionStore) Selection() *Selection { return s.selection }

// Toggle flips the membership of the symbol in the local selection and
// propagates the change to the persisted mirror. It returns the updated
// selection.
func (s *SelectionStore) Toggle(sym Symbol) *Selection {
	s.selection.Toggle(sym)
	s.mirror()
	return s.selection
}

// mirrorAttempts bounds the reapply loop on revision conflicts.
const mirrorAttempts = 3

// mirror pushes the local selection into the profile record. Conflicts are
// retried by re-reading the record and reapplying the selection on top.
func (s *SelectionStore) mirror() {
	if s.subject == nil {
		return
	}
	for range mirrorAttempts {
		profile, err := s.store.Profile(s.subject.ID)
		if err != nil {
			log.Printf("cannot mirror selection for %s: %v", s.subject.ID, err)
			return
		}
		profile.SetSelection(s.selection)
		err = s.store.SaveProfile(s.subject.ID, profile)
		if err == nil {
			return
		}
		if !errors.Is(err, ErrStaleRevision) {
			log.Printf("cannot mirror selection for %s: %v", s.subject.ID, err)
			return
		}
	}
	log.Printf("cannot mirror selection for %s: too many concurrent writers", s.subject.ID)
}
