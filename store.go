package cryptotrack

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// This file contains code to persist subject records in a folder, in a way
// that is human-readable and git-friendly.
//
// The layout mimics a document store keyed by subject identifier:
//   users/<subject>.json             the subject's profile record
//   users/<subject>.conversions.jsonl  the subject's conversion log
//   posts.jsonl                      the community feed
//   events.jsonl                     the calendar
//
// The profile record carries a revision counter: SaveProfile is a
// conditional write that rejects a save based on a stale revision, so two
// concurrent writers cannot silently overwrite each other.

// ErrStaleRevision is returned by SaveProfile when the stored record moved
// on since the caller read it.
var ErrStaleRevision = errors.New("profile changed since it was read")

// Store is the file-based document store rooted at a data directory.
type Store struct {
	dir string
}

// NewStore opens (or lazily creates) a store rooted at dir.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) profilePath(subjectID string) string {
	return filepath.Join(s.dir, "users", subjectID+".json")
}

func (s *Store) conversionsPath(subjectID string) string {
	return filepath.Join(s.dir, "users", subjectID+".conversions.jsonl")
}

func (s *Store) postsPath() string  { return filepath.Join(s.dir, "posts.jsonl") }
func (s *Store) eventsPath() string { return filepath.Join(s.dir, "events.jsonl") }

// Profile reads the subject's profile record. A missing record is an empty
// profile at revision zero, not an error.
func (s *Store) Profile(subjectID string) (*Profile, error) {
	content, err := os.ReadFile(s.profilePath(subjectID))
	if errors.Is(err, fs.ErrNotExist) {
		return &Profile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("format error in %q: %w", s.profilePath(subjectID), err)
	}
	return &p, nil
}

// SaveProfile writes the subject's profile record if and only if p carries
// the revision of the stored record; otherwise it returns
// ErrStaleRevision. On success the stored revision (and p's) is bumped.
func (s *Store) SaveProfile(subjectID string, p *Profile) error {
	current, err := s.Profile(subjectID)
	if err != nil {
		return err
	}
	if current.Revision != p.Revision {
		return fmt.Errorf("%w: read revision %d, stored revision %d", ErrStaleRevision, p.Revision, current.Revision)
	}
	p.Revision++

	if err := os.MkdirAll(filepath.Dir(s.profilePath(subjectID)), 0755); err != nil {
		return fmt.Errorf("cannot create users directory: %w", err)
	}
	content, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.profilePath(subjectID), content, 0644)
}

// AppendConversion appends one entry to the subject's conversion log.
func (s *Store) AppendConversion(subjectID string, c ConversionResult) error {
	if err := os.MkdirAll(filepath.Dir(s.conversionsPath(subjectID)), 0755); err != nil {
		return fmt.Errorf("cannot create users directory: %w", err)
	}
	f, err := os.OpenFile(s.conversionsPath(subjectID), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open conversion log: %w", err)
	}
	defer f.Close()

	line, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("cannot append to conversion log: %w", err)
	}
	return nil
}

// Conversions returns the subject's conversion log, newest first.
// A missing log is an empty sequence.
func (s *Store) Conversions(subjectID string) ([]ConversionResult, error) {
	f, err := os.Open(s.conversionsPath(subjectID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open conversion log: %w", err)
	}
	defer f.Close()

	var list []ConversionResult
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var c ConversionResult
		if err := json.Unmarshal(line, &c); err != nil {
			return nil, fmt.Errorf("format error in %q: %w", s.conversionsPath(subjectID), err)
		}
		list = append(list, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	// stored oldest first, listed newest first.
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list, nil
}

// ClearConversions removes every entry of the subject's conversion log.
// Selective deletion is not supported.
func (s *Store) ClearConversions(subjectID string) error {
	err := os.Remove(s.conversionsPath(subjectID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// appendLine appends one JSON line to the named file.
func appendLine(filename string, v any) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	line, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = f.Write(append(line, '\n'))
	return err
}

// decodeLines decodes every JSON line of the named file into items
// produced by the make callback. A missing file yields no items.
func decodeLines(filename string, decode func(line []byte) error) error {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		if err := decode(line); err != nil {
			return fmt.Errorf("format error in %q: %w", filename, err)
		}
	}
	return scanner.Err()
}

// rewriteLines atomically replaces the named file with one JSON line per item.
func rewriteLines[T any](filename string, items []T) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".rewrite-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, item := range items {
		line, err := json.Marshal(item)
		if err != nil {
			tmp.Close()
			return err
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			tmp.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}
