package response_models

import dbm "holiday-api/internal/models/db_models"

type AccountLoginResponse struct {
	Token string `json:"token"`
}

type ParticipantResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func NewParticipantResponse(p dbm.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:        p.ID.String(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
}

func NewParticipantResponses(ps []dbm.Participant) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewParticipantResponse(p))
	}
	return out
}
