package response_models

import (
	"time"

	dbm "holiday-api/internal/models/db_models"
)

type LocationResponse struct {
	ID         string  `json:"id"`
	Street     *string `json:"street,omitempty"`
	Number     *string `json:"number,omitempty"`
	Locality   string  `json:"locality"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
}

type HolidayResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Description  *string               `json:"description,omitempty"`
	HolidayPath  string                `json:"holiday_path"`
	StartDate    time.Time             `json:"start_date"`
	EndDate      time.Time             `json:"end_date"`
	IsPublish    bool                  `json:"is_publish"`
	CreatorID    string                `json:"creator_id"`
	Location     LocationResponse      `json:"location"`
	Activities   []ActivityResponse    `json:"activities"`
	Participants []ParticipantResponse `json:"participants"`
}

type ActivityResponse struct {
	ID           string           `json:"id"`
	HolidayID    string           `json:"holiday_id"`
	Name         string           `json:"name"`
	Description  *string          `json:"description,omitempty"`
	ActivityPath string           `json:"activity_path"`
	Price        float64          `json:"price"`
	StartDate    time.Time        `json:"start_date"`
	EndDate      time.Time        `json:"end_date"`
	Location     LocationResponse `json:"location"`
}

func NewLocationResponse(l dbm.Location) LocationResponse {
	return LocationResponse{
		ID:         l.ID.String(),
		Street:     l.Street,
		Number:     l.Number,
		Locality:   l.Locality,
		PostalCode: l.PostalCode,
		Country:    l.Country,
	}
}

func NewActivityResponse(a dbm.Activity) ActivityResponse {
	return ActivityResponse{
		ID:           a.ID.String(),
		HolidayID:    a.HolidayID.String(),
		Name:         a.Name,
		Description:  a.Description,
		ActivityPath: a.ActivityPath,
		Price:        a.Price,
		StartDate:    a.StartDate,
		EndDate:      a.EndDate,
		Location:     NewLocationResponse(a.Location),
	}
}

func NewHolidayResponse(h dbm.Holiday) HolidayResponse {
	activities := make([]ActivityResponse, 0, len(h.Activities))
	for _, a := range h.Activities {
		activities = append(activities, NewActivityResponse(a))
	}

	return HolidayResponse{
		ID:           h.ID.String(),
		Name:         h.Name,
		Description:  h.Description,
		HolidayPath:  h.HolidayPath,
		StartDate:    h.StartDate,
		EndDate:      h.EndDate,
		IsPublish:    h.IsPublish,
		CreatorID:    h.CreatorID.String(),
		Location:     NewLocationResponse(h.Location),
		Activities:   activities,
		Participants: NewParticipantResponses(h.Participants),
	}
}

func NewHolidayResponses(hs []dbm.Holiday) []HolidayResponse {
	out := make([]HolidayResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, NewHolidayResponse(h))
	}
	return out
}
