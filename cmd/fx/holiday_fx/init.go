package holiday_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"holiday-api/internal/config"
	"holiday-api/internal/repositories"
	"holiday-api/internal/services"
)

var Module = fx.Provide(provideHolidayRepo, provideHolidayService)

func provideHolidayRepo(db *gorm.DB) repositories.HolidayRepository {
	return repositories.NewHolidayRepository(db)
}

type holidayDeps struct {
	fx.In

	DB           *gorm.DB
	Config       *config.Config
	Holidays     repositories.HolidayRepository
	Invitations  repositories.InvitationRepository
	Activities   repositories.ActivityRepository
	Participates repositories.ParticipateRepository
	Messages     repositories.MessageRepository
	Participants repositories.ParticipantRepository
	Validator    services.LocationValidator
	Pictures     services.PictureStore
}

func provideHolidayService(d holidayDeps) services.HolidayServiceInterface {
	return services.NewHolidayService(
		d.DB, d.Holidays, d.Invitations, d.Activities, d.Participates, d.Messages, d.Participants,
		d.Validator, d.Pictures, d.Config.Pictures.DefaultHoliday,
	)
}
