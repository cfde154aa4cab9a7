package statistics_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"holiday-api/internal/repositories"
	"holiday-api/internal/services"
)

var Module = fx.Provide(provideStatisticsRepo, provideStatisticsService)

func provideStatisticsRepo(db *gorm.DB) repositories.StatisticsRepository {
	return repositories.NewStatisticsRepository(db)
}

func provideStatisticsService(repo repositories.StatisticsRepository) services.StatisticsServiceInterface {
	return services.NewStatisticsService(repo)
}
