package models

import "time"

// Project status literals.
const (
	ProjectInProgress = "In Corso"
	ProjectCompleted  = "Completato"
	ProjectPlanned    = "Pianificato"
)

func ValidProjectStatus(s string) bool {
	return s == ProjectInProgress || s == ProjectCompleted || s == ProjectPlanned
}

// Project is a long-running initiative of the association.
type Project struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	StartDate   *time.Time
	EndDate     *time.Time
	Status      string `gorm:"size:16;not null;default:Pianificato"`
	ImageURL    string `gorm:"size:255"`
}
