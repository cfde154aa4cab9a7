package db_models

import "github.com/google/uuid"

// Participate is a participant's signup for one activity.
type Participate struct {
	BaseModel
	ActivityID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_participate_activity_participant"`
	ParticipantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_participate_activity_participant;index"`

	Activity    Activity    `gorm:"foreignKey:ActivityID;constraint:OnDelete:RESTRICT"`
	Participant Participant `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
}
