package storage

import (
	"sync"
	"time"
)

type guestEntry struct {
	blob     []byte
	storedAt time.Time
}

// MemoryGuestStore is an in-process GuestStore.
// Blobs live until deleted or swept.
type MemoryGuestStore struct {
	mu      sync.RWMutex
	entries map[string]map[string]guestEntry
	now     func() time.Time
}

// NewMemoryGuestStore creates an empty store
func NewMemoryGuestStore() *MemoryGuestStore {
	return &MemoryGuestStore{
		entries: make(map[string]map[string]guestEntry),
		now:     time.Now,
	}
}

// Put stores a copy of blob, replacing any previous value under the same key
func (s *MemoryGuestStore) Put(guestKey, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scope, ok := s.entries[guestKey]
	if !ok {
		scope = make(map[string]guestEntry)
		s.entries[guestKey] = scope
	}
	scope[key] = guestEntry{blob: append([]byte(nil), blob...), storedAt: s.now()}
	return nil
}

// Get returns a copy of the stored blob
func (s *MemoryGuestStore) Get(guestKey, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[guestKey][key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), e.blob...), true
}

// Delete removes a blob; the guest scope goes away with its last key
func (s *MemoryGuestStore) Delete(guestKey, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scope, ok := s.entries[guestKey]
	if !ok {
		return
	}
	delete(scope, key)
	if len(scope) == 0 {
		delete(s.entries, guestKey)
	}
}

// Sweep drops blobs stored more than olderThan ago and returns how many were removed
func (s *MemoryGuestStore) Sweep(olderThan time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-olderThan)
	removed := 0
	for guestKey, scope := range s.entries {
		for key, e := range scope {
			if e.storedAt.Before(cutoff) {
				delete(scope, key)
				removed++
			}
		}
		if len(scope) == 0 {
			delete(s.entries, guestKey)
		}
	}
	return removed
}

// Len reports the number of stored blobs
func (s *MemoryGuestStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, scope := range s.entries {
		n += len(scope)
	}
	return n
}
