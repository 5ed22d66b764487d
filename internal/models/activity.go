package models

import "time"

// Activity is a single event, optionally belonging to a project.
type Activity struct {
	ID          uint   `gorm:"primaryKey"`
	ProjectID   *uint  `gorm:"index"` // nullable: an activity need not belong to a project
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Date        *time.Time
	Location    string `gorm:"size:255"`
	ImageURL    string `gorm:"size:255"`

	Project Project `gorm:"constraint:OnDelete:SET NULL"`
}
