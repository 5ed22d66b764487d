package models

import "time"

// Role values stored on users and sessions.
const (
	RoleAdmin     = "Admin"
	RoleVolunteer = "Volontario"
)

// ValidRole reports whether r is one of the fixed role literals.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleVolunteer
}

// User represents a registered volunteer or administrator.
// Users are created at registration and never deleted through the API.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	FirstName    string `gorm:"size:100"`
	LastName     string `gorm:"size:100"`
	Role         string `gorm:"size:16;not null;default:Volontario"`
	CreatedAt    time.Time
}
