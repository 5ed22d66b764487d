package models

import "time"

// NewsPost is a published news item. Author is free text; when omitted at
// creation it is filled with the acting user's id.
type NewsPost struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	Content     string    `gorm:"type:text;not null"`
	PublishedAt time.Time `gorm:"autoCreateTime;index"`
	Author      string    `gorm:"size:100"`
	ImageURL    string    `gorm:"size:255"`
	Category    string    `gorm:"size:100"`
}
