package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holiday-api/internal/models/request_models"
	"holiday-api/internal/models/response_models"
	"holiday-api/internal/services"
	"holiday-api/pkg/utils"
)

type ParticipantController struct {
	participantService services.ParticipantServiceInterface
}

func NewParticipantController(participantService services.ParticipantServiceInterface) *ParticipantController {
	return &ParticipantController{
		participantService: participantService,
	}
}

// Register godoc
// @Summary Register a new participant
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /v1/accounts/register [post]
func (p *ParticipantController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	participant, err := p.participantService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewParticipantResponse(*participant), "Account created successfully")
}

// Login godoc
// @Summary Login
// @Description Authenticate with email and password and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /v1/accounts/login [post]
func (p *ParticipantController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := p.participantService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AccountLoginResponse{Token: token}, "Login successful")
}

// Me godoc
// @Summary Current participant
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/accounts/me [get]
func (p *ParticipantController) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	participant, err := p.participantService.GetParticipant(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewParticipantResponse(*participant), "Participant fetched successfully")
}
