package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Distribution status literals.
const (
	DistributionPlanned   = "Pianificata"
	DistributionCompleted = "Completata"
	DistributionCancelled = "Annullata"
)

func ValidDistributionStatus(s string) bool {
	return s == DistributionPlanned || s == DistributionCompleted || s == DistributionCancelled
}

// Distribution is an event in which products are handed to a family.
// Deleting a family removes its distributions together with their line items.
type Distribution struct {
	ID          uint      `gorm:"primaryKey"`
	FamilyID    uint      `gorm:"index;not null"`
	Date        time.Time `gorm:"not null;index"`
	Notes       string    `gorm:"type:text"`
	VolunteerID *uint     `gorm:"index"` // defaults to the acting session user
	Status      string    `gorm:"size:16;not null;default:Pianificata"`
	CreatedAt   time.Time

	Family    Family                 `gorm:"constraint:OnDelete:CASCADE"`
	Volunteer User                   `gorm:"foreignKey:VolunteerID;constraint:OnDelete:SET NULL"`
	LineItems []DistributionLineItem `gorm:"constraint:OnDelete:CASCADE"`
}

// DistributionLineItem is one product+quantity pairing within a distribution.
// Created only as part of a distribution; never updated or deleted on its own.
type DistributionLineItem struct {
	ID             uint            `gorm:"primaryKey"`
	DistributionID uint            `gorm:"index;not null"`
	ProductID      uint            `gorm:"index;not null"`
	Quantity       decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product Product `gorm:"constraint:OnDelete:CASCADE"`
}
