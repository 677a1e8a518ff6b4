package cryptotrack

import "testing"

func TestRecorderAnonymousIsNoOp(t *testing.T) {
	store := NewStore(t.TempDir())
	r := NewRecorder(store)

	result := conversion("bitcoin", "usd", "1", "50000")
	r.Record(&result, nil)

	// no entry exists after an anonymous record.
	list, err := store.Conversions("")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("anonymous record persisted %d entries, want 0", len(list))
	}
}

func TestRecorderRoundTrip(t *testing.T) {
	r := NewRecorder(NewStore(t.TempDir()))
	alice := &Subject{ID: "alice@example.com", Name: "Alice", Email: "alice@example.com"}

	first := conversion("bitcoin", "usd", "1", "50000")
	second := conversion("ethereum", "usd", "2", "3000")
	r.Record(&first, alice)
	r.Record(&second, alice)
	r.Record(nil, alice) // nil result is skipped

	list, err := r.List(alice)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID != second.ID {
		t.Errorf("newest first: got %s, want %s", list[0].ID, second.ID)
	}

	if err := r.Clear(alice); err != nil {
		t.Fatal(err)
	}
	list, err = r.List(alice)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("after clear len = %d, want 0", len(list))
	}
}

func TestRecorderListAnonymous(t *testing.T) {
	r := NewRecorder(NewStore(t.TempDir()))
	list, err := r.List(nil)
	if err != nil {
		t.Fatal(err)
	}
	if list != nil {
		t.Errorf("anonymous list = %v, want nil", list)
	}
}
