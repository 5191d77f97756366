package session

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// CookieName carries the session token in the browser.
	CookieName = "ewizz_session"
	// ContextKey is where request middleware parks the resolved Record.
	ContextKey = "ewizz.session"
)

// Record is one logged-in user, stored as plain columns. No expiry and no
// refresh: a row lives until an explicit logout clears it.
type Record struct {
	Token     string `gorm:"primaryKey;type:varchar(64)"`
	UserID    string `gorm:"type:varchar(64)"`
	Username  string `gorm:"type:varchar(255)"`
	Role      string `gorm:"type:varchar(32)"`
	CreatedAt time.Time
}

type Store struct {
	db *gorm.DB
}

func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Save persists the user and returns the token the browser cookie carries.
func (s *Store) Save(userID, username, role string) (string, error) {
	rec := Record{
		Token:     uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.Token, nil
}

// Load resolves a cookie token to its session, if any.
func (s *Store) Load(token string) (*Record, bool) {
	if token == "" {
		return nil, false
	}
	var rec Record
	if err := s.db.Where("token = ?", token).First(&rec).Error; err != nil {
		return nil, false
	}
	return &rec, true
}

func (s *Store) Clear(token string) error {
	return s.db.Where("token = ?", token).Delete(&Record{}).Error
}
