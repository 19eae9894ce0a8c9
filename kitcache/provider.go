package kitcache

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

// Provider stores and retrieves []byte values representing serialized HTTP
// responses, keyed by request URL, with a per-entry expiration time.
//
// Implementations must be thread-safe.
type Provider interface {
	// Get returns the cached value for the given key, if it exists.
	// Expired entries are reported as absent.
	Get(key string) ([]byte, bool, error)
	// Put stores the given value under the given key until expires.
	Put(key string, expires time.Time, bytes []byte) error
	// Purge removes the entry for the given key.
	Purge(key string) error
}

type memEntry struct {
	expires time.Time
	bytes   []byte
}

// MemCache is the default, process-local Provider.
type MemCache struct {
	mutex *sync.RWMutex
	db    map[string]memEntry
}

func NewMemCache() MemCache {
	return MemCache{
		mutex: &sync.RWMutex{},
		db:    make(map[string]memEntry),
	}
}

func (m MemCache) Get(key string) ([]byte, bool, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	entry, ok := m.db[key]
	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expires) {
		return nil, false, nil
	}
	return entry.bytes, true, nil
}

func (m MemCache) Put(key string, expires time.Time, bytes []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.db[key] = memEntry{expires, bytes}
	return nil
}

func (m MemCache) Purge(key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.db, key)
	return nil
}

// SQLiteCache is a Provider that survives restarts. Useful when the proxy
// runs as a single long-lived edge node.
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(path string) (SQLiteCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return SQLiteCache{}, err
	}
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS cache (key TEXT PRIMARY KEY, expires INTEGER, bytes BLOB)"); err != nil {
		return SQLiteCache{}, err
	}
	return SQLiteCache{db: db}, nil
}

func (s SQLiteCache) Get(key string) ([]byte, bool, error) {
	var expires int64
	var bytes []byte
	err := s.db.QueryRow("SELECT expires, bytes FROM cache WHERE key = ?", key).Scan(&expires, &bytes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if time.Now().After(time.Unix(expires, 0)) {
		return nil, false, nil
	}
	return bytes, true, nil
}

func (s SQLiteCache) Put(key string, expires time.Time, bytes []byte) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO cache (key, expires, bytes) VALUES (?, ?, ?)", key, expires.Unix(), bytes)
	return err
}

func (s SQLiteCache) Purge(key string) error {
	_, err := s.db.Exec("DELETE FROM cache WHERE key = ?", key)
	return err
}
