package invitation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"holiday-api/internal/repositories"
	"holiday-api/internal/services"
)

var Module = fx.Provide(provideInvitationRepo, provideInvitationService)

func provideInvitationRepo(db *gorm.DB) repositories.InvitationRepository {
	return repositories.NewInvitationRepository(db)
}

func provideInvitationService(
	db *gorm.DB,
	invitations repositories.InvitationRepository,
	holidays repositories.HolidayRepository,
	participants repositories.ParticipantRepository,
	mail services.IMailService,
) services.InvitationServiceInterface {
	return services.NewInvitationService(db, invitations, holidays, participants, mail)
}
