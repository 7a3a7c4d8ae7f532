package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Volunteer is a roster entry: a user's confirmed membership in a project.
type Volunteer struct {
	ID               string  `gorm:"primaryKey;size:36"`
	ProjectID        string  `gorm:"size:36;not null;index;uniqueIndex:idx_volunteer_project_volunteer"`
	VolunteerID      string  `gorm:"size:36;not null;index;uniqueIndex:idx_volunteer_project_volunteer"`
	Role             *string `gorm:"size:128"`
	Status           string  `gorm:"size:16;not null;default:Active"`
	JoinedAt         *time.Time
	HoursContributed *int

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	User    User    `gorm:"foreignKey:VolunteerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Volunteer) TableName() string {
	return "project_volunteers"
}

func (v *Volunteer) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
