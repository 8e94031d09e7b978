// Package session provides session-scoped storage for the booking workflow.
// Each session holds JSON-serialized blobs under fixed per-stage keys,
// mirroring the browser session model: written on stage confirmation, read
// on screen entry, cleared on submission or abandonment.
package session

import (
	"sync"
	"time"

	"github.com/flight-booking/booking-configuration-service/internal/infrastructure/timeutil"
)

// DefaultTTL is the default session lifetime.
const DefaultTTL = 30 * time.Minute

// Store is the session-scoped blob store. Navigation is strictly
// sequential and single-user, so there is a single writer per session at
// any time; the store only needs to be safe for concurrent sessions.
type Store interface {
	// Create registers a new empty session.
	Create(sessionID string)

	// Exists reports whether the session is present and not expired.
	Exists(sessionID string) bool

	// Get returns the blob stored under the key, if any.
	Get(sessionID, key string) ([]byte, bool)

	// Set stores a blob under the key. It reports false if the session
	// does not exist or has expired.
	Set(sessionID, key string, value []byte) bool

	// Delete removes the session and all its blobs.
	Delete(sessionID string)
}

// entry holds one session's blobs and its expiry deadline.
type entry struct {
	data      map[string][]byte
	expiresAt time.Time
}

// MemoryStore is an in-memory Store with TTL-based expiry.
// Expired sessions are reaped lazily on access.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	clock    timeutil.Clock
}

// NewMemoryStore creates a MemoryStore with the given TTL and clock.
// A non-positive TTL falls back to DefaultTTL; a nil clock falls back to
// the real clock.
func NewMemoryStore(ttl time.Duration, clock timeutil.Clock) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &MemoryStore{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		clock:    clock,
	}
}

// Create implements Store.Create.
func (s *MemoryStore) Create(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = &entry{
		data:      make(map[string][]byte),
		expiresAt: s.clock.Now().Add(s.ttl),
	}
}

// Exists implements Store.Exists.
func (s *MemoryStore) Exists(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.live(sessionID) != nil
}

// Get implements Store.Get.
func (s *MemoryStore) Get(sessionID, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.live(sessionID)
	if e == nil {
		return nil, false
	}
	value, ok := e.data[key]
	return value, ok
}

// Set implements Store.Set. A successful write slides the session's
// expiry forward.
func (s *MemoryStore) Set(sessionID, key string, value []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.live(sessionID)
	if e == nil {
		return false
	}
	e.data[key] = value
	e.expiresAt = s.clock.Now().Add(s.ttl)
	return true
}

// Delete implements Store.Delete.
func (s *MemoryStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}

// live returns the entry for the session, reaping it if expired.
// The caller must hold the lock.
func (s *MemoryStore) live(sessionID string) *entry {
	e, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	if s.clock.Now().After(e.expiresAt) {
		delete(s.sessions, sessionID)
		return nil
	}
	return e
}

// Len returns the number of live sessions. Expired but unreaped sessions
// are counted; Len is intended for metrics and tests.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// Ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)
