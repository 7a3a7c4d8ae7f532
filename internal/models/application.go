package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Application is a volunteer's request to join a project. The contact fields
// are copied from the applicant when the request is submitted.
type Application struct {
	ID             string  `gorm:"primaryKey;size:36"`
	ProjectID      string  `gorm:"size:36;not null;index;uniqueIndex:idx_application_project_volunteer"`
	VolunteerID    *string `gorm:"size:36;index;uniqueIndex:idx_application_project_volunteer"`
	VolunteerName  string  `gorm:"size:255;not null"`
	VolunteerEmail string  `gorm:"size:255;not null"`
	VolunteerPhone *string `gorm:"size:32"`
	Skills         datatypes.JSONSlice[string]
	Message        *string   `gorm:"type:text"`
	Status         string    `gorm:"size:16;not null;default:Pending;index"`
	AppliedAt      time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time `gorm:"not null"`

	// Relationships
	Project   Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Volunteer *User   `gorm:"foreignKey:VolunteerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

func (Application) TableName() string {
	return "project_applications"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = tx.NowFunc()
	}
	return nil
}
