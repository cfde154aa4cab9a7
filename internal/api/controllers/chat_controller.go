package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"holiday-api/internal/services"
	"holiday-api/pkg/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const maxChatFrame = 4096

type ChatController struct {
	hub                *services.ChatHub
	tokens             *utils.JWTManager
	holidayService     services.HolidayServiceInterface
	participantService services.ParticipantServiceInterface
}

func NewChatController(
	hub *services.ChatHub,
	tokens *utils.JWTManager,
	holidayService services.HolidayServiceInterface,
	participantService services.ParticipantServiceInterface,
) *ChatController {
	return &ChatController{
		hub:                hub,
		tokens:             tokens,
		holidayService:     holidayService,
		participantService: participantService,
	}
}

// Connect godoc
// @Summary Holiday chat websocket
// @Description Browsers cannot set headers on websocket requests, so the token travels in the query
// @Tags Chat
// @Param token query string true "JWT"
// @Param holidayId query string true "Holiday ID"
// @Success 101
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /v1/chat/ws [get]
func (ch *ChatController) Connect(c *gin.Context) {
	claims, err := ch.tokens.ValidateToken(c.Query("token"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidToken)
		return
	}
	holidayID, err := uuid.Parse(c.Query("holidayId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid holidayId")
		return
	}

	ctx := c.Request.Context()
	if err := ch.holidayService.EnsureMember(ctx, holidayID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	participant, err := ch.participantService.GetParticipant(ctx, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade chat connection")
		return
	}
	conn.SetReadLimit(maxChatFrame)

	// The request context ends with the handler; room events outlive it.
	roomCtx := context.WithoutCancel(ctx)

	client := services.NewChatClient(conn, *participant, holidayID)
	if err := ch.hub.Join(roomCtx, client); err != nil {
		log.Error().Err(err).Str("holiday_id", holidayID.String()).Msg("Failed to join chat room")
		conn.Close()
		return
	}
	defer ch.hub.Leave(roomCtx, client)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("participant_id", userID.String()).Msg("Chat connection closed unexpectedly")
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err := ch.hub.SendMessage(roomCtx, client, string(data)); err != nil {
			log.Warn().Err(err).Str("participant_id", userID.String()).Msg("Chat message rejected")
		}
	}
}
