package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Holiday struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description *string
	HolidayPath string
	StartDate   time.Time `gorm:"not null;index"`
	EndDate     time.Time `gorm:"not null;index"`
	IsPublish   bool      `gorm:"default:false;index"`

	CreatorID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Creator   Participant `gorm:"foreignKey:CreatorID;constraint:OnDelete:RESTRICT"`

	LocationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Location   Location  `gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT"`

	Activities []Activity `gorm:"foreignKey:HolidayID;constraint:OnDelete:RESTRICT"`

	// Accepted members, filled on read; not persisted.
	Participants []Participant `gorm:"-"`
}

func (h *Holiday) HasValidWindow() bool {
	return h.StartDate.Before(h.EndDate)
}
