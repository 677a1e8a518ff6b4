package cryptotrack

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Subject is the authenticated principal on whose behalf state is
// persisted. The core only reads its stable identifier; it holds no
// lifecycle authority over it.
type Subject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Provider string `json:"provider"`
}

// Session is the explicit signed-in state passed to every component that
// needs it. There is no ambient global: a command loads the session once
// and hands it down.
type Session struct {
	Subject *Subject `json:"subject,omitempty"`
}

// Authenticated reports whether a subject is signed in.
func (s *Session) Authenticated() bool { return s != nil && s.Subject != nil }

const sessionFilename = "session.json"

// LoadSession reads the persisted session from the data directory.
// A missing file is an anonymous session, not an error.
func LoadSession(dir string) (*Session, error) {
	content, err := os.ReadFile(filepath.Join(dir, sessionFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(content, &s); err != nil {
		return nil, fmt.Errorf("cannot parse session: %w", err)
	}
	return &s, nil
}

// SaveSession persists the session to the data directory.
func SaveSession(dir string, s *Session) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create data directory: %w", err)
	}
	content, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, sessionFilename), content, 0644)
}

// ClearSession signs the subject out. In-memory state derived from the
// subject is discarded by the caller; no further persistence calls are
// issued on its behalf.
func ClearSession(dir string) error {
	err := os.Remove(filepath.Join(dir, sessionFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
