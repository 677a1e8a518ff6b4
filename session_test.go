package cryptotrack

import "testing"

func TestSessionMissingIsAnonymous(t *testing.T) {
	s, err := LoadSession(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if s.Authenticated() {
		t.Error("missing session file should be anonymous")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := &Session{Subject: &Subject{
		ID: "alice@example.com", Name: "Alice",
		Email: "alice@example.com", Provider: "google",
	}}
	if err := SaveSession(dir, in); err != nil {
		t.Fatal(err)
	}

	out, err := LoadSession(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Authenticated() {
		t.Fatal("reloaded session should be authenticated")
	}
	if *out.Subject != *in.Subject {
		t.Errorf("subject = %+v, want %+v", out.Subject, in.Subject)
	}

	if err := ClearSession(dir); err != nil {
		t.Fatal(err)
	}
	cleared, err := LoadSession(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cleared.Authenticated() {
		t.Error("session should be anonymous after clear")
	}
	// clearing twice is fine.
	if err := ClearSession(dir); err != nil {
		t.Fatal(err)
	}
}
