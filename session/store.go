package session

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lms/models"
)

// Fixed row keys; the store holds at most one token and one profile snapshot.
const (
	tokenKey   = "auth_token"
	profileKey = "auth_profile"
)

// SessionRecord is one durable key/value entry of the local session store.
type SessionRecord struct {
	Key       string         `gorm:"primaryKey"`
	Token     string         `gorm:"default:''"`
	Profile   datatypes.JSON `gorm:"default:NULL"`
	UpdatedAt time.Time
}

// Store persists the session token (and a display-only profile snapshot)
// in a local sqlite file.
type Store struct {
	db *gorm.DB
}

// OpenStore opens or creates the session database at path.
func OpenStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&SessionRecord{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// SaveToken stores token under the fixed key, replacing any previous one.
func (s *Store) SaveToken(token string) error {
	record := SessionRecord{Key: tokenKey, Token: token}
	return s.db.Save(&record).Error
}

// Token returns the stored token, or "" when none is stored.
func (s *Store) Token() (string, error) {
	var record SessionRecord
	err := s.db.Where("key = ?", tokenKey).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return record.Token, nil
}

// DeleteToken removes the stored token. Deleting an absent token is a no-op.
func (s *Store) DeleteToken() error {
	return s.db.Where("key = ?", tokenKey).Delete(&SessionRecord{}).Error
}

// SaveProfile stores a snapshot of the authenticated user. The snapshot is
// display-only; it never substitutes for a validated token.
func (s *Store) SaveProfile(user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	record := SessionRecord{Key: profileKey, Profile: datatypes.JSON(raw)}
	return s.db.Save(&record).Error
}

// Profile returns the stored user snapshot, or nil when none is stored.
func (s *Store) Profile() (*models.User, error) {
	var record SessionRecord
	err := s.db.Where("key = ?", profileKey).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(record.Profile) == 0 {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(record.Profile, &user); err != nil {
		log.Printf("session: discarding unreadable profile snapshot: %v", err)
		return nil, nil
	}
	return &user, nil
}

// DeleteProfile removes the stored user snapshot.
func (s *Store) DeleteProfile() error {
	return s.db.Where("key = ?", profileKey).Delete(&SessionRecord{}).Error
}
