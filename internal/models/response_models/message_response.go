package response_models

import (
	"time"

	dbm "holiday-api/internal/models/db_models"
)

type MessageResponse struct {
	ID            string    `json:"id"`
	HolidayID     string    `json:"holiday_id"`
	ParticipantID string    `json:"participant_id"`
	Sender        string    `json:"sender"`
	Content       string    `json:"content"`
	SendAt        time.Time `json:"send_at"`
}

func NewMessageResponses(msgs []dbm.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, MessageResponse{
			ID:            m.ID.String(),
			HolidayID:     m.HolidayID.String(),
			ParticipantID: m.ParticipantID.String(),
			Sender:        m.Participant.FirstName,
			Content:       m.Content,
			SendAt:        m.SendAt,
		})
	}
	return out
}
