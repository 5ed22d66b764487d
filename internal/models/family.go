package models

import "time"

// Distribution type literals for a family.
const (
	DistribTypeHome   = "Casa"
	DistribTypeCenter = "Centro"
)

// ValidDistribType reports whether t is an accepted distribution type.
// The empty string is allowed (field is optional).
func ValidDistribType(t string) bool {
	return t == "" || t == DistribTypeHome || t == DistribTypeCenter
}

// Family represents a household served by the association.
// The composition counts are independent integers; no sum invariant holds.
type Family struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"size:255;not null"`
	ReferentFirstName string `gorm:"size:100"`
	ReferentLastName  string `gorm:"size:100"`
	Members           int    `gorm:"default:0"`
	Men               int    `gorm:"default:0"`
	Women             int    `gorm:"default:0"`
	Children          int    `gorm:"default:0"`
	Address           string `gorm:"size:255"`
	Phone             string `gorm:"size:20"`
	Email             string `gorm:"size:255"`
	DistributionWeek  int
	DistributionType  string `gorm:"size:16"`
	Notes             string `gorm:"type:text"`
	CreatedAt         time.Time
}
