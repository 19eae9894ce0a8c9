package kitcache

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider(t *testing.T, cache Provider) {
	t.Helper()

	_, ok, err := cache.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Put("k", time.Now().Add(time.Minute), []byte("v1")))
	got, ok, err := cache.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), got)

	// Overwrite replaces the entry.
	require.NoError(t, cache.Put("k", time.Now().Add(time.Minute), []byte("v2")))
	got, _, err = cache.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	// Expired entries read as absent.
	require.NoError(t, cache.Put("old", time.Now().Add(-time.Second), []byte("v")))
	_, ok, err = cache.Get("old")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Purge("k"))
	_, ok, err = cache.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemCache(t *testing.T) {
	testProvider(t, NewMemCache())
}

func TestSQLiteCache(t *testing.T) {
	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	testProvider(t, cache)
}

func TestEntryRoundTrip(t *testing.T) {
	header := http.Header{}
	header.Set("Content-Type", "text/plain; charset=utf-8")
	header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	entry := Entry{Status: 200, Header: header, Body: []byte("hello")}

	bytes, err := entry.Encode()
	require.NoError(t, err)

	decoded, err := DecodeEntry(bytes)
	require.NoError(t, err)
	assert.Equal(t, entry.Status, decoded.Status)
	assert.Equal(t, entry.Header, decoded.Header)
	assert.Equal(t, entry.Body, decoded.Body)
}
