package response_models

type StatisticsResponse struct {
	ActiveParticipants int64 `json:"active_participants"`
}

type CountryStatistic struct {
	Country               string `json:"country"`
	ParticipantsByCountry int64  `json:"participants_by_country"`
}
