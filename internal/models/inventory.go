package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryEntry holds the current on-hand quantity for a product.
// One entry per product, by convention rather than constraint: the schema
// deliberately keeps a single quantity per product instead of expiry lots.
type InventoryEntry struct {
	ID         uint            `gorm:"primaryKey"`
	ProductID  uint            `gorm:"index;not null"`
	Quantity   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ExpiryDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Product Product `gorm:"constraint:OnDelete:CASCADE"`
}

// InventoryLoad is an append-only audit record of stock received.
// It records which user registered the load.
type InventoryLoad struct {
	ID        uint            `gorm:"primaryKey"`
	ProductID uint            `gorm:"index;not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LoadDate  time.Time       `gorm:"not null"`
	Supplier  string          `gorm:"size:255"`
	Notes     string          `gorm:"type:text"`
	UserID    *uint           `gorm:"index"`
	CreatedAt time.Time

	Product Product `gorm:"constraint:OnDelete:CASCADE"`
	User    User    `gorm:"constraint:OnDelete:SET NULL"`
}
