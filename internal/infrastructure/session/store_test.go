package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-booking/booking-configuration-service/internal/infrastructure/timeutil"
)

func newTestStore(t *testing.T) (*MemoryStore, *timeutil.MockClock) {
	t.Helper()
	clock := timeutil.NewMockClockFromString("2026-03-15T10:00:00Z")
	return NewMemoryStore(30*time.Minute, clock), clock
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store, _ := newTestStore(t)

	store.Create("sess-1")
	require.True(t, store.Exists("sess-1"))

	_, ok := store.Get("sess-1", "booking:seats")
	assert.False(t, ok, "no blob stored yet")

	assert.True(t, store.Set("sess-1", "booking:seats", []byte(`["12A"]`)))

	value, ok := store.Get("sess-1", "booking:seats")
	require.True(t, ok)
	assert.Equal(t, []byte(`["12A"]`), value)
}

func TestMemoryStore_UnknownSession(t *testing.T) {
	store, _ := newTestStore(t)

	assert.False(t, store.Exists("missing"))
	assert.False(t, store.Set("missing", "key", []byte("v")))

	_, ok := store.Get("missing", "key")
	assert.False(t, ok)
}

func TestMemoryStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)

	store.Create("sess-1")
	store.Set("sess-1", "key", []byte("v"))
	store.Delete("sess-1")

	assert.False(t, store.Exists("sess-1"))
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_Expiry(t *testing.T) {
	store, clock := newTestStore(t)

	store.Create("sess-1")
	store.Set("sess-1", "key", []byte("v"))

	clock.Advance(31 * time.Minute)

	assert.False(t, store.Exists("sess-1"))
	_, ok := store.Get("sess-1", "key")
	assert.False(t, ok)
}

func TestMemoryStore_WriteSlidesExpiry(t *testing.T) {
	store, clock := newTestStore(t)

	store.Create("sess-1")

	clock.Advance(20 * time.Minute)
	require.True(t, store.Set("sess-1", "key", []byte("v")))

	// Another 20 minutes passes; the write reset the 30-minute window.
	clock.Advance(20 * time.Minute)
	assert.True(t, store.Exists("sess-1"))

	clock.Advance(11 * time.Minute)
	assert.False(t, store.Exists("sess-1"))
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	store, _ := newTestStore(t)

	store.Create("sess-1")
	store.Create("sess-2")

	store.Set("sess-1", "key", []byte("one"))
	store.Set("sess-2", "key", []byte("two"))

	v1, _ := store.Get("sess-1", "key")
	v2, _ := store.Get("sess-2", "key")
	assert.Equal(t, []byte("one"), v1)
	assert.Equal(t, []byte("two"), v2)
}

func TestMemoryStore_ConcurrentSessions(t *testing.T) {
	store := NewMemoryStore(time.Minute, nil)

	var wg sync.WaitGroup
	ids := []string{"a", "b", "c", "d"}
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			store.Create(id)
			for i := 0; i < 50; i++ {
				store.Set(id, "key", []byte(id))
				store.Get(id, "key")
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, len(ids), store.Len())
}

func TestNewMemoryStore_Defaults(t *testing.T) {
	store := NewMemoryStore(0, nil)
	assert.Equal(t, DefaultTTL, store.ttl)
	assert.NotNil(t, store.clock)
}
