package models

import "time"

type Event struct {
	BaseModel

	ProjectID      string `gorm:"size:36;not null;index"`
	Name           string `gorm:"size:255;not null"`
	Description    *string
	Date           time.Time `gorm:"type:date;not null"`
	Time           string    `gorm:"size:16;not null"`
	SlotsAvailable int       `gorm:"not null;default:0"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Event) TableName() string {
	return "project_events"
}
