package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel

	Name            string  `gorm:"not null;index"`
	Email           string  `gorm:"uniqueIndex;not null"`
	PhoneNumber     *string `gorm:"column:phonenumber;size:32;uniqueIndex"`
	PasswordHash    string  `gorm:"not null"`
	City            *string
	Country         *string
	Skills          datatypes.JSONSlice[string]
	Interests       datatypes.JSONSlice[string]
	Story           *string `gorm:"type:text"`
	ProfileImageURL *string `gorm:"size:512"`
	LastLoginAt     *time.Time

	// Relationships
	OwnedProjects  []Project      `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Applications   []Application  `gorm:"foreignKey:VolunteerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	VolunteerRoles []Volunteer    `gorm:"foreignKey:VolunteerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Notifications  []Notification `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// DisplayName is the name shown to project owners, falling back to the
// email address when no name was given.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
