package models

import "time"

// Session stores server-side login sessions. The opaque token (primary key)
// travels in a cookie; user id and role are recorded at login time.
type Session struct {
	ID        string    `gorm:"primaryKey;size:64"` // UUID
	UserID    uint      `gorm:"index;not null"`
	Role      string    `gorm:"size:16;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// Active reports whether the session is still usable at t.
func (s *Session) Active(t time.Time) bool {
	return t.Before(s.ExpiresAt)
}
