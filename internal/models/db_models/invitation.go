package db_models

import "github.com/google/uuid"

// Invitation is a participant's membership of a holiday, pending until accepted.
type Invitation struct {
	BaseModel
	HolidayID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_invitation_holiday_participant"`
	ParticipantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_invitation_holiday_participant;index"`
	IsAccepted    bool      `gorm:"not null;default:false"`

	Holiday     Holiday     `gorm:"foreignKey:HolidayID;constraint:OnDelete:RESTRICT"`
	Participant Participant `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
}
