package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"holiday-api/internal/models/request_models"
	"holiday-api/internal/models/response_models"
	"holiday-api/internal/services"
	"holiday-api/pkg/utils"
)

type InvitationController struct {
	invitationService services.InvitationServiceInterface
}

func NewInvitationController(invitationService services.InvitationServiceInterface) *InvitationController {
	return &InvitationController{invitationService: invitationService}
}

// CreateInvitations godoc
// @Summary Invite participants
// @Description Invites every listed participant or none of them
// @Tags Invitations
// @Accept json
// @Produce json
// @Param request body request_models.CreateInvitationsRequest true "Holiday and invitees"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/invitations [post]
func (i *InvitationController) CreateInvitations(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.CreateInvitationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	holidayID := uuid.MustParse(req.HolidayID)
	ids := make([]uuid.UUID, 0, len(req.ParticipantIDs))
	for _, raw := range req.ParticipantIDs {
		ids = append(ids, uuid.MustParse(raw))
	}

	if err := i.invitationService.CreateInvitations(c.Request.Context(), holidayID, userID, ids); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Invitations sent successfully")
}

// GetInvitations godoc
// @Summary Pending invitations of the caller
// @Tags Invitations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/invitations [get]
func (i *InvitationController) GetInvitations(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	invitations, err := i.invitationService.GetInvitationsByParticipant(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewInvitationResponses(invitations), "Invitations fetched successfully")
}

// AcceptInvitation godoc
// @Summary Accept an invitation
// @Tags Invitations
// @Produce json
// @Param invitationId path string true "Invitation ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/invitations/{invitationId} [put]
func (i *InvitationController) AcceptInvitation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	invitationID, ok := uuidParam(c, "invitationId")
	if !ok {
		return
	}

	if err := i.invitationService.AcceptInvitation(c.Request.Context(), invitationID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Invitation accepted")
}

// RefuseInvitation godoc
// @Summary Refuse an invitation
// @Tags Invitations
// @Produce json
// @Param invitationId path string true "Invitation ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/invitations/{invitationId} [delete]
func (i *InvitationController) RefuseInvitation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	invitationID, ok := uuidParam(c, "invitationId")
	if !ok {
		return
	}

	if err := i.invitationService.RefuseInvitation(c.Request.Context(), invitationID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Invitation refused")
}
