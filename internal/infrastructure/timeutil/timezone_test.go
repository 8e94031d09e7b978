package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation_UTC(t *testing.T) {
	ClearLocationCache()

	loc, err := GetLocation("UTC")
	require.NoError(t, err)
	assert.NotNil(t, loc)
	assert.Equal(t, "UTC", loc.String())
}

func TestGetLocation_Invalid(t *testing.T) {
	ClearLocationCache()

	loc, err := GetLocation("Invalid/Timezone")
	assert.Error(t, err)
	assert.Nil(t, loc)
	assert.Contains(t, err.Error(), "failed to load timezone")
}

func TestGetLocation_Caching(t *testing.T) {
	ClearLocationCache()

	// First call should load the location
	loc1, err := GetLocation("Asia/Tokyo")
	require.NoError(t, err)

	// Second call should return cached location
	loc2, err := GetLocation("Asia/Tokyo")
	require.NoError(t, err)

	// Should be the exact same pointer
	assert.Same(t, loc1, loc2)
}

func TestGetLocation_ConcurrentAccess(t *testing.T) {
	ClearLocationCache()

	var wg sync.WaitGroup
	locations := []string{"UTC", "Asia/Jakarta", "Asia/Tokyo", "America/New_York", "Europe/London"}

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			loc, err := GetLocation(name)
			assert.NoError(t, err)
			assert.NotNil(t, loc)
		}(locations[i%len(locations)])
	}

	wg.Wait()
}

func TestInTimezone(t *testing.T) {
	utcTime := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	converted, err := InTimezone(utcTime, "Asia/Jakarta")
	require.NoError(t, err)

	// Jakarta is UTC+7
	assert.Equal(t, 19, converted.Hour())
	assert.True(t, utcTime.Equal(converted))
}

func TestInTimezone_InvalidTimezone(t *testing.T) {
	utcTime := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	got, err := InTimezone(utcTime, "Invalid/Timezone")
	assert.Error(t, err)
	assert.Equal(t, utcTime, got, "time returned unchanged on error")
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, 3, 15, 9, 5, 30, 0, time.UTC)
	assert.Equal(t, "2026-03-15 09:05", FormatDateTime(ts))
}

func TestClearLocationCache(t *testing.T) {
	ClearLocationCache()

	_, err := GetLocation("Europe/Paris")
	require.NoError(t, err)

	ClearLocationCache()

	// Cache cleared; loading still works
	loc, err := GetLocation("Europe/Paris")
	require.NoError(t, err)
	assert.NotNil(t, loc)
}
