package services

import (
	"context"
	"time"

	"holiday-api/internal/models/response_models"
	"holiday-api/internal/repositories"
)

type StatisticsServiceInterface interface {
	GetStatistics(ctx context.Context) (*response_models.StatisticsResponse, error)
	GetStatisticsForDate(ctx context.Context, day time.Time) ([]response_models.CountryStatistic, error)
}

type StatisticsService struct {
	repo repositories.StatisticsRepository
}

func NewStatisticsService(repo repositories.StatisticsRepository) StatisticsServiceInterface {
	return &StatisticsService{repo: repo}
}

func (s *StatisticsService) GetStatistics(ctx context.Context) (*response_models.StatisticsResponse, error) {
	n, err := s.repo.CountParticipants(ctx)
	if err != nil {
		return nil, storeFailure(err, "Failed to count participants", nil)
	}
	return &response_models.StatisticsResponse{ActiveParticipants: n}, nil
}

func (s *StatisticsService) GetStatisticsForDate(ctx context.Context, day time.Time) ([]response_models.CountryStatistic, error) {
	rows, err := s.repo.CountByCountryOn(ctx, day)
	if err != nil {
		return nil, storeFailure(err, "Failed to compute statistics", map[string]interface{}{
			"date": day.Format("2006-01-02"),
		})
	}

	out := make([]response_models.CountryStatistic, 0, len(rows))
	for _, r := range rows {
		out = append(out, response_models.CountryStatistic{
			Country:               r.Country,
			ParticipantsByCountry: r.Count,
		})
	}
	return out, nil
}
