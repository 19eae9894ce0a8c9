package database

import (
	"sync"
	"time"

	"agentkit-backend/models"
)

// MemoryEnquiryStore is an in-process EnquiryStore for tests and local runs.
type MemoryEnquiryStore struct {
	mu sync.RWMutex
	db map[string]models.Enquiry
}

func NewMemoryEnquiryStore() *MemoryEnquiryStore {
	return &MemoryEnquiryStore{db: make(map[string]models.Enquiry)}
}

func (m *MemoryEnquiryStore) Insert(e *models.Enquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.db[e.ID] = *e
	return nil
}

func (m *MemoryEnquiryStore) Get(id string) (*models.Enquiry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.db[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// MemoryThrottleStore is an in-process ThrottleStore for tests and local runs.
type MemoryThrottleStore struct {
	mu sync.RWMutex
	db map[string]time.Time
}

func NewMemoryThrottleStore() *MemoryThrottleStore {
	return &MemoryThrottleStore{db: make(map[string]time.Time)}
}

func (m *MemoryThrottleStore) Get(key string) (*models.RateLimit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	at, ok := m.db[key]
	if !ok {
		return nil, nil
	}
	return &models.RateLimit{Key: key, LastRequestAt: at}, nil
}

func (m *MemoryThrottleStore) Upsert(key string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.db[key] = at
	return nil
}
