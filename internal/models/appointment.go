package models

import "time"

// Appointment status literals.
const (
	AppointmentPlanned   = "Pianificato"
	AppointmentConfirmed = "Confermato"
	AppointmentCancelled = "Annullato"
	AppointmentCompleted = "Completato"
)

func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentPlanned, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted:
		return true
	}
	return false
}

// Appointment is a scheduled meeting, optionally tied to a family and/or
// an activity. Family deletion nulls the reference out.
type Appointment struct {
	ID         uint      `gorm:"primaryKey"`
	FamilyID   *uint     `gorm:"index"`
	ActivityID *uint     `gorm:"index"`
	Title      string    `gorm:"size:255"`
	Date       time.Time `gorm:"not null;index"`
	Location   string    `gorm:"size:255"`
	Notes      string    `gorm:"type:text"`
	Status     string    `gorm:"size:16;not null;default:Pianificato"`
	CreatedAt  time.Time

	Family   Family   `gorm:"constraint:OnDelete:SET NULL"`
	Activity Activity `gorm:"constraint:OnDelete:SET NULL"`
}
