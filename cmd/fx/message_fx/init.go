package message_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"holiday-api/internal/repositories"
	"holiday-api/internal/services"
)

var Module = fx.Provide(provideMessageRepo, provideMessageService)

func provideMessageRepo(db *gorm.DB) repositories.MessageRepository {
	return repositories.NewMessageRepository(db)
}

func provideMessageService(
	messages repositories.MessageRepository,
	holidays repositories.HolidayRepository,
	participants repositories.ParticipantRepository,
) services.MessageServiceInterface {
	return services.NewMessageService(messages, holidays, participants)
}
