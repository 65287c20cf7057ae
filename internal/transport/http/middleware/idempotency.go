package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

var ErrIdempotencyConflict = errors.New("idempotency key conflicts with existing request")

type idempotencyEntry struct {
	requestHash string
	response    json.RawMessage
	expiresAt   time.Time
}

// IdempotencyStore remembers successful responses per key so a retried
// request replays the stored outcome instead of repeating the side effect.
// Entries live in memory and expire after the ttl; nothing survives a
// restart, which is enough to guard double submits within a session.
type IdempotencyStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]idempotencyEntry
}

func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &IdempotencyStore{ttl: ttl, entries: make(map[string]idempotencyEntry)}
}

func RequestHash(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Check returns the stored response for a key, if any. Reusing a key with a
// different request hash is a conflict, never a silent replay.
func (s *IdempotencyStore) Check(key, requestHash string) (json.RawMessage, bool, error) {
	if s == nil {
		return nil, false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		return nil, false, nil
	}
	if entry.requestHash != requestHash {
		return nil, false, ErrIdempotencyConflict
	}
	return entry.response, true, nil
}

func (s *IdempotencyStore) Save(key, requestHash string, response json.RawMessage) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = idempotencyEntry{
		requestHash: requestHash,
		response:    response,
		expiresAt:   time.Now().Add(s.ttl),
	}
}
