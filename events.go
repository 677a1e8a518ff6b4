package cryptotrack

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Event is one calendar entry, keyed by day.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	Date        Date   `json:"date"`
}

// Calendar is the shared event calendar persisted in the store. Everybody
// can read it; only the configured admin may add to it.
type Calendar struct {
	store *Store
	admin string // admin email, empty means nobody
}

// NewCalendar creates a Calendar backed by the given store. admin is the
// email allowed to add events.
func NewCalendar(store *Store, admin string) *Calendar {
	return &Calendar{store: store, admin: admin}
}

// On returns the events of the given day.
func (c *Calendar) On(day Date) ([]Event, error) {
	var events []Event
	err := decodeLines(c.store.eventsPath(), func(line []byte) error {
		var e Event
		if err := json.Unmarshal(line, &e); err != nil {
			return err
		}
		if e.Date == day {
			events = append(events, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Add appends an event to the calendar. It is gated on the admin email:
// any other subject (or an anonymous one) is rejected without attempting
// the operation.
func (c *Calendar) Add(e Event, subject *Subject) (*Event, error) {
	if subject == nil || c.admin == "" || subject.Email != c.admin {
		return nil, errors.New("only the calendar admin can add events")
	}
	if e.Title == "" {
		return nil, errors.New("event title is required")
	}
	if e.Date.IsZero() {
		return nil, errors.New("event date is required")
	}
	e.ID = uuid.NewString()
	if err := appendLine(c.store.eventsPath(), e); err != nil {
		return nil, fmt.Errorf("cannot save event: %w", err)
	}
	return &e, nil
}
