package request_models

type CreateInvitationsRequest struct {
	HolidayID      string   `json:"holiday_id" binding:"required,uuid4"`
	ParticipantIDs []string `json:"participant_ids" binding:"required,min=1,dive,uuid4"`
}
