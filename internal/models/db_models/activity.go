package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Activity dates are not checked against the parent holiday window.
type Activity struct {
	BaseModel
	Name         string `gorm:"not null"`
	Description  *string
	ActivityPath string
	Price        float64   `gorm:"not null;default:0;check:price >= 0"`
	StartDate    time.Time `gorm:"not null"`
	EndDate      time.Time `gorm:"not null"`

	HolidayID uuid.UUID `gorm:"type:uuid;not null;index"`

	LocationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Location   Location  `gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT"`
}

func (a *Activity) HasValidWindow() bool {
	return a.StartDate.Before(a.EndDate)
}
