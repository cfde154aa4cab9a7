package controllers

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups every controller mounted under /v1.
type Handlers struct {
	Participants *ParticipantController
	Holidays     *HolidayController
	Invitations  *InvitationController
	Activities   *ActivityController
	Statistics   *StatisticsController
	Chat         *ChatController
}

// RegisterRoutes mounts the API; auth guards everything but account
// creation, login and the websocket, which authenticates from its query.
func RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc, h Handlers) {
	v1 := r.Group("/v1")

	accounts := v1.Group("/accounts")
	accounts.POST("/register", h.Participants.Register)
	accounts.POST("/login", h.Participants.Login)
	accounts.GET("/me", auth, h.Participants.Me)

	holidays := v1.Group("/holidays", auth)
	holidays.GET("", h.Holidays.ListHolidays)
	holidays.POST("", h.Holidays.CreateHoliday)
	holidays.GET("/:holidayId", h.Holidays.GetHoliday)
	holidays.PUT("/:holidayId", h.Holidays.UpdateHoliday)
	holidays.DELETE("/:holidayId", h.Holidays.DeleteHoliday)
	holidays.DELETE("/:holidayId/leave", h.Holidays.LeaveHoliday)
	holidays.GET("/:holidayId/participants", h.Holidays.GetParticipants)
	holidays.GET("/:holidayId/messages", h.Holidays.GetMessages)

	invitations := v1.Group("/invitations", auth)
	invitations.POST("", h.Invitations.CreateInvitations)
	invitations.GET("", h.Invitations.GetInvitations)
	invitations.PUT("/:invitationId", h.Invitations.AcceptInvitation)
	invitations.DELETE("/:invitationId", h.Invitations.RefuseInvitation)

	activities := v1.Group("/activities", auth)
	activities.POST("", h.Activities.CreateActivity)
	activities.GET("/:activityId", h.Activities.GetActivity)
	activities.PUT("/:activityId", h.Activities.UpdateActivity)
	activities.DELETE("/:activityId", h.Activities.DeleteActivity)
	activities.GET("/:activityId/participants", h.Activities.GetParticipants)
	activities.POST("/:activityId/participants/:participantId", h.Activities.AddParticipant)
	activities.DELETE("/:activityId/participants/:participantId", h.Activities.RemoveParticipant)

	statistics := v1.Group("/statistics", auth)
	statistics.GET("", h.Statistics.GetStatistics)
	statistics.GET("/date/:date", h.Statistics.GetStatisticsForDate)

	v1.GET("/chat/ws", h.Chat.Connect)
}
