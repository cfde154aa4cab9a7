package activity_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"holiday-api/internal/config"
	"holiday-api/internal/repositories"
	"holiday-api/internal/services"
)

// Module covers activities and the participations hanging off them.
var Module = fx.Provide(
	provideParticipateRepo, provideActivityRepo,
	provideActivityService, provideParticipateService,
)

func provideParticipateRepo(db *gorm.DB) repositories.ParticipateRepository {
	return repositories.NewParticipateRepository(db)
}

func provideActivityRepo(db *gorm.DB, participates repositories.ParticipateRepository) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db, participates)
}

func provideActivityService(
	cfg *config.Config,
	activities repositories.ActivityRepository,
	holidays repositories.HolidayRepository,
	validator services.LocationValidator,
	pictures services.PictureStore,
) services.ActivityServiceInterface {
	return services.NewActivityService(activities, holidays, validator, pictures, cfg.Pictures.DefaultActivity)
}

func provideParticipateService(
	participates repositories.ParticipateRepository,
	activities repositories.ActivityRepository,
	invitations repositories.InvitationRepository,
	participants repositories.ParticipantRepository,
) services.ParticipateServiceInterface {
	return services.NewParticipateService(participates, activities, invitations, participants)
}
