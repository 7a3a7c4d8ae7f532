package models

import (
	"time"

	"github.com/volunteerhub-dev/volunteerhub/internal/types"
)

// Notification is part of the schema only; no operation writes or reads it yet.
type Notification struct {
	BaseModel

	UserID       string                 `gorm:"size:36;not null;index"`
	ProjectID    *string                `gorm:"size:36;index"`
	Type         types.NotificationType `gorm:"size:32;not null"`
	Title        string                 `gorm:"size:255;not null"`
	Message      string                 `gorm:"type:text;not null"`
	ProjectTitle *string                `gorm:"size:255"`
	Read         bool                   `gorm:"not null;default:false"`
	ReadAt       *time.Time

	// Relationships
	User    User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
