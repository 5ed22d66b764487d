package models

// Product is immutable after creation: no update or delete endpoint exists.
type Product struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:255;not null"`
	Description   string `gorm:"type:text"`
	UnitOfMeasure string `gorm:"size:50"`
}
