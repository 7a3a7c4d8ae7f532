package models

import (
	"time"

	"gorm.io/datatypes"
)

type Project struct {
	BaseModel

	OwnerID             string `gorm:"size:36;not null;index"`
	Title               string `gorm:"size:255;not null;index"`
	ShortDescription    string `gorm:"size:512;not null"`
	DetailedDescription string `gorm:"type:text;not null"`
	Category            string `gorm:"size:128;not null;index"`
	ProjectType         string `gorm:"size:16;not null;index"` // Online, Onsite, Hybrid
	Location            *string
	ImageURL            string `gorm:"size:512"`
	SkillsNeeded        datatypes.JSONSlice[string]
	StartDate           time.Time `gorm:"type:date;not null"`
	EndDate             time.Time `gorm:"type:date;not null"`

	// Relationships
	Owner         User           `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Events        []Event        `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Applications  []Application  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Volunteers    []Volunteer    `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Notifications []Notification `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (Project) TableName() string {
	return "projects"
}
