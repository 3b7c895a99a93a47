package memcache

import (
	"testing"
	"time"
)

func TestTTLStoreExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewTTLStore(6*time.Hour, func() time.Time { return now })

	store.Set("key", []byte("payload"))

	got, ok := store.Get("key")
	if !ok {
		t.Fatal("expected fresh entry to be returned")
	}
	if string(got) != "payload" {
		t.Fatalf("unexpected payload %q", got)
	}

	now = now.Add(6*time.Hour - time.Second)
	if _, ok := store.Get("key"); !ok {
		t.Fatal("entry expired before its TTL")
	}

	now = now.Add(2 * time.Second)
	if _, ok := store.Get("key"); ok {
		t.Fatal("expected entry to expire after the TTL")
	}
}

func TestTTLStoreOverwrite(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewTTLStore(time.Hour, func() time.Time { return now })

	store.Set("key", []byte("old"))
	now = now.Add(59 * time.Minute)
	store.Set("key", []byte("new"))

	now = now.Add(30 * time.Minute)
	got, ok := store.Get("key")
	if !ok {
		t.Fatal("overwrite should reset the entry age")
	}
	if string(got) != "new" {
		t.Fatalf("unexpected payload %q", got)
	}

	if _, ok := store.Get("missing"); ok {
		t.Fatal("expected miss for unknown key")
	}
}
