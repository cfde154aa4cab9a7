package controllers_fx

import (
	"go.uber.org/fx"

	"holiday-api/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewParticipantController),
	fx.Provide(controllers.NewHolidayController),
	fx.Provide(controllers.NewInvitationController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewStatisticsController),
	fx.Provide(controllers.NewChatController),
)
