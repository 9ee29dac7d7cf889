package cache

import (
	"testing"
	"time"
)

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), ttl)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t, time.Hour)

	in := map[string]int{"a": 1, "b": 2}
	if err := store.Set("key", in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out map[string]int
	ok, err := store.Get("key", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("Get returned ok = false for existing key")
	}
	if out["a"] != 1 || out["b"] != 2 || len(out) != 2 {
		t.Errorf("Get decoded %v, want %v", out, in)
	}
}

func TestStoreMissingKey(t *testing.T) {
	store := newTestStore(t, time.Hour)

	var out map[string]int
	ok, err := store.Get("absent", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Errorf("Get returned ok = true for absent key")
	}
}

func TestStoreExpiry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping expiry wait in short mode")
	}
	store := newTestStore(t, time.Second)

	if err := store.Set("key", 42); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(1500 * time.Millisecond)

	var out int
	ok, err := store.Get("key", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Errorf("Get returned ok = true for expired key")
	}
}

func TestShowIndex(t *testing.T) {
	store := newTestStore(t, time.Hour)

	index := ShowIndex{"show name": 1234, "other show": 5678}
	if err := store.PutShowIndex("addic7ed", index); err != nil {
		t.Fatalf("PutShowIndex: %v", err)
	}

	got, ok, err := store.GetShowIndex("addic7ed")
	if err != nil {
		t.Fatalf("GetShowIndex: %v", err)
	}
	if !ok {
		t.Fatalf("GetShowIndex returned ok = false")
	}
	if got["show name"] != 1234 || got["other show"] != 5678 {
		t.Errorf("GetShowIndex = %v, want %v", got, index)
	}

	// Catalogs are keyed independently.
	if _, ok, _ := store.GetShowIndex("opensubtitles"); ok {
		t.Errorf("GetShowIndex found an index under another catalog's key")
	}
}
