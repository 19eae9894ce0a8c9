package database

import (
	"errors"
	"time"

	"agentkit-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnquiryStore is the durable keyed collection of accepted enquiries.
// Implementations only need get-by-key and insert; rows are never updated.
type EnquiryStore interface {
	Insert(e *models.Enquiry) error
	Get(id string) (*models.Enquiry, error)
}

// ThrottleStore is the durable keyed collection of throttle entries.
// Get returns (nil, nil) when no entry exists for the key.
type ThrottleStore interface {
	Get(key string) (*models.RateLimit, error)
	Upsert(key string, at time.Time) error
}

// GormEnquiryStore backs EnquiryStore with the shared GORM connection.
type GormEnquiryStore struct {
	DB *gorm.DB
}

func (s GormEnquiryStore) Insert(e *models.Enquiry) error {
	return s.DB.Create(e).Error
}

func (s GormEnquiryStore) Get(id string) (*models.Enquiry, error) {
	var e models.Enquiry
	err := s.DB.First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GormThrottleStore backs ThrottleStore with the shared GORM connection.
type GormThrottleStore struct {
	DB *gorm.DB
}

func (s GormThrottleStore) Get(key string) (*models.RateLimit, error) {
	var rl models.RateLimit
	err := s.DB.First(&rl, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rl, nil
}

func (s GormThrottleStore) Upsert(key string, at time.Time) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_request_at"}),
	}).Create(&models.RateLimit{Key: key, LastRequestAt: at}).Error
}
