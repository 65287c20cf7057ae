package middleware

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestIdempotencyReplayAndConflict(t *testing.T) {
	store := NewIdempotencyStore(time.Hour)
	hash := RequestHash([]byte(`{"email":"anna@example.com"}`))

	if _, ok, err := store.Check("eval-1", hash); ok || err != nil {
		t.Fatalf("expected miss on empty store, got ok=%v err=%v", ok, err)
	}

	store.Save("eval-1", hash, json.RawMessage(`{"exported":true}`))

	stored, ok, err := store.Check("eval-1", hash)
	if err != nil || !ok {
		t.Fatalf("expected replay, got ok=%v err=%v", ok, err)
	}
	if string(stored) != `{"exported":true}` {
		t.Fatalf("unexpected stored response: %s", stored)
	}

	otherHash := RequestHash([]byte(`{"email":"other@example.com"}`))
	if _, _, err := store.Check("eval-1", otherHash); !errors.Is(err, ErrIdempotencyConflict) {
		t.Fatalf("expected conflict for reused key with different payload, got %v", err)
	}

	if _, ok, _ := store.Check("eval-2", hash); ok {
		t.Fatal("different key must not replay")
	}
}

func TestIdempotencyEntriesExpire(t *testing.T) {
	store := NewIdempotencyStore(time.Nanosecond)
	hash := RequestHash([]byte("payload"))
	store.Save("eval-1", hash, json.RawMessage(`{}`))

	time.Sleep(time.Millisecond)

	if _, ok, err := store.Check("eval-1", hash); ok || err != nil {
		t.Fatalf("expected expired entry to miss, got ok=%v err=%v", ok, err)
	}
}

func TestIdempotencyNilStoreIsInert(t *testing.T) {
	var store *IdempotencyStore
	store.Save("k", "h", nil)
	if _, ok, err := store.Check("k", "h"); ok || err != nil {
		t.Fatalf("nil store must never replay or fail, got ok=%v err=%v", ok, err)
	}
}

func TestRequestHashIsStable(t *testing.T) {
	a := RequestHash([]byte("same"))
	b := RequestHash([]byte("same"))
	if a != b {
		t.Fatal("hash must be deterministic")
	}
	if a == RequestHash([]byte("different")) {
		t.Fatal("different payloads must not collide")
	}
}
