package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvRecord maps a collection key to its JSON document.
type kvRecord struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     []byte `gorm:"type:bytes"`
	UpdatedAt time.Time
}

func (kvRecord) TableName() string { return "kv_records" }

// GormStore is a Store backed by a relational database through GORM. The
// sqlite driver covers the embedded single-tenant setup; postgres is
// available for a managed deployment.
type GormStore struct {
	db *gorm.DB
}

// OpenGormStore connects with the given driver ("sqlite" or "postgres") and
// DSN and migrates the key-value table.
func OpenGormStore(driver, dsn string) (*GormStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect %s store: %w", driver, err)
	}
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(key string, dest interface{}) error {
	var rec kvRecord
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(rec.Value, dest); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) Save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	rec := kvRecord{Key: key, Value: data, UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
