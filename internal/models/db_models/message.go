package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Message is append-only; rows go away only with their holiday.
type Message struct {
	BaseModel
	SendAt        time.Time `gorm:"not null;index"`
	Content       string    `gorm:"type:text;not null"`
	HolidayID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ParticipantID uuid.UUID `gorm:"type:uuid;not null"`

	Holiday     Holiday     `gorm:"foreignKey:HolidayID;constraint:OnDelete:RESTRICT"`
	Participant Participant `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
}
