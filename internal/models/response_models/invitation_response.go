package response_models

import dbm "holiday-api/internal/models/db_models"

type InvitationResponse struct {
	ID          string              `json:"id"`
	IsAccepted  bool                `json:"is_accepted"`
	Holiday     HolidayResponse     `json:"holiday"`
	Participant ParticipantResponse `json:"participant"`
}

func NewInvitationResponses(invs []dbm.Invitation) []InvitationResponse {
	out := make([]InvitationResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, InvitationResponse{
			ID:          inv.ID.String(),
			IsAccepted:  inv.IsAccepted,
			Holiday:     NewHolidayResponse(inv.Holiday),
			Participant: NewParticipantResponse(inv.Participant),
		})
	}
	return out
}
