package session

import (
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Row is the authentication service's sessions table.
type Row struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	UserID    string    `gorm:"type:char(36);not null;index:ix_sessions_user_id"`
	ExpiresAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Row) TableName() string { return "sessions" }

// DBStore resolves the session cookie against the shared sessions and users tables.
type DBStore struct {
	DB         *gorm.DB
	CookieName string
	Now        func() time.Time
}

func NewDBStore(db *gorm.DB, cookieName string) *DBStore {
	if strings.TrimSpace(cookieName) == "" {
		cookieName = "session_id"
	}
	return &DBStore{DB: db, CookieName: cookieName, Now: time.Now}
}

func (s *DBStore) Lookup(r *http.Request) (Session, bool) {
	c, err := r.Cookie(s.CookieName)
	if err != nil || c.Value == "" {
		return Session{}, false
	}

	ctx := r.Context()
	var row Row
	if err := s.DB.WithContext(ctx).
		Where("id = ? AND expires_at > ?", c.Value, s.Now()).
		First(&row).Error; err != nil {
		return Session{}, false
	}

	var email, role string
	dbRow := s.DB.WithContext(ctx).Table("users").
		Select("email", "role").
		Where("id = ?", row.UserID).
		Row()
	if err := dbRow.Scan(&email, &role); err != nil {
		return Session{}, false
	}

	return Session{UserID: row.UserID, Email: email, Role: role}, true
}
