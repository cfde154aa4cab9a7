package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holiday-api/internal/models/db_models"
	"holiday-api/internal/models/request_models"
	"holiday-api/internal/models/response_models"
	"holiday-api/internal/services"
	"holiday-api/pkg/utils"
)

type HolidayController struct {
	holidayService     services.HolidayServiceInterface
	participantService services.ParticipantServiceInterface
	messageService     services.MessageServiceInterface
}

func NewHolidayController(
	holidayService services.HolidayServiceInterface,
	participantService services.ParticipantServiceInterface,
	messageService services.MessageServiceInterface,
) *HolidayController {
	return &HolidayController{
		holidayService:     holidayService,
		participantService: participantService,
		messageService:     messageService,
	}
}

func holidayInput(req request_models.HolidayRequest) (services.HolidayInput, error) {
	start, end, err := parseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return services.HolidayInput{}, err
	}
	return services.HolidayInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		IsPublish:   req.IsPublish,
		Location:    toLocation(req.LocationFields),
	}, nil
}

// ListHolidays godoc
// @Summary List holidays
// @Description Holidays the caller accepted, or every published holiday with published=true
// @Tags Holidays
// @Produce json
// @Param published query bool false "List published holidays instead"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/holidays [get]
func (h *HolidayController) ListHolidays(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	published, ok := boolQuery(c, "published", false)
	if !ok {
		return
	}

	var holidays []db_models.Holiday
	var err error
	if published {
		holidays, err = h.holidayService.ListPublishedHolidays(c.Request.Context())
	} else {
		holidays, err = h.holidayService.ListHolidaysForParticipant(c.Request.Context(), userID)
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewHolidayResponses(holidays), "Holidays fetched successfully")
}

// GetHoliday godoc
// @Summary Get a holiday
// @Description Members see any holiday; others only published ones
// @Tags Holidays
// @Produce json
// @Param holidayId path string true "Holiday ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/holidays/{holidayId} [get]
func (h *HolidayController) GetHoliday(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	holidayID, ok := uuidParam(c, "holidayId")
	if !ok {
		return
	}

	holiday, err := h.holidayService.GetHolidayById(c.Request.Context(), holidayID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !holiday.IsPublish {
		if err := h.holidayService.EnsureMember(c.Request.Context(), holidayID, userID); err != nil {
			utils.HandleServiceError(c, err)
			return
		}
	}

	utils.RespondSuccess(c, response_models.NewHolidayResponse(*holiday), "Holiday fetched successfully")
}

// CreateHoliday godoc
// @Summary Create a holiday
// @Description The caller becomes the creator and its first accepted participant
// @Tags Holidays
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "Holiday picture"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/holidays [post]
func (h *HolidayController) CreateHoliday(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.HolidayRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	input, err := holidayInput(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	picture, closePicture, err := uploadedPicture(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	defer closePicture()

	holiday, err := h.holidayService.CreateHoliday(c.Request.Context(), userID, input, picture)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewHolidayResponse(*holiday), "Holiday created successfully")
}

// UpdateHoliday godoc
// @Summary Update a holiday
// @Description A new file replaces the picture; delete_image without a file restores the stock picture
// @Tags Holidays
// @Accept multipart/form-data
// @Produce json
// @Param holidayId path string true "Holiday ID"
// @Param file formData file false "New picture"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/holidays/{holidayId} [put]
func (h *HolidayController) UpdateHoliday(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	holidayID, ok := uuidParam(c, "holidayId")
	if !ok {
		return
	}
	if err := h.holidayService.EnsureMember(c.Request.Context(), holidayID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.HolidayRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	input, err := holidayInput(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	picture, closePicture, err := uploadedPicture(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	defer closePicture()

	holiday, err := h.holidayService.UpdateHoliday(c.Request.Context(), holidayID, input, services.PictureEdit{
		Upload:         picture,
		DeleteExisting: req.DeleteImage,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewHolidayResponse(*holiday), "Holiday updated successfully")
}

// DeleteHoliday godoc
// @Summary Delete a holiday
// @Description Removes the holiday with its activities, participations, invitations and messages. Creator only.
// @Tags Holidays
// @Produce json
// @Param holidayId path string true "Holiday ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/holidays/{holidayId} [delete]
func (h *HolidayController) DeleteHoliday(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	holidayID, ok := uuidParam(c, "holidayId")
	if !ok {
		return
	}
	if err := h.holidayService.EnsureCreator(c.Request.Context(), holidayID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := h.holidayService.DeleteHoliday(c.Request.Context(), holidayID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Holiday deleted successfully")
}

// LeaveHoliday godoc
// @Summary Leave a holiday
// @Description The holiday is deleted when the last accepted participant leaves
// @Tags Holidays
// @Produce json
// @Param holidayId path string true "Holiday ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/holidays/{holidayId}/leave [delete]
func (h *HolidayController) LeaveHoliday(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	holidayID, ok := uuidParam(c, "holidayId")
	if !ok {
		return
	}

	if err := h.holidayService.LeaveHoliday(c.Request.Context(), holidayID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Holiday left successfully")
}

// GetParticipants godoc
// @Summary Holiday participants
// @Description isParticipated=false lists participants not invited yet
// @Tags Holidays
// @Produce json
// @Param holidayId path string true "Holiday ID"
// @Param isParticipated query bool false "Members (default) or invite candidates"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/holidays/{holidayId}/participants [get]
func (h *HolidayController) GetParticipants(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	holidayID, ok := uuidParam(c, "holidayId")
	if !ok {
		return
	}
	participated, ok := boolQuery(c, "isParticipated", true)
	if !ok {
		return
	}
	if err := h.holidayService.EnsureMember(c.Request.Context(), holidayID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var list []db_models.Participant
	var err error
	if participated {
		list, err = h.participantService.ListParticipantsByHoliday(c.Request.Context(), holidayID)
	} else {
		list, err = h.participantService.ListParticipantsNotInHoliday(c.Request.Context(), holidayID)
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewParticipantResponses(list), "Participants fetched successfully")
}

// GetMessages godoc
// @Summary Chat history
// @Description The most recent messages of the holiday chat, oldest first
// @Tags Holidays
// @Produce json
// @Param holidayId path string true "Holiday ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/holidays/{holidayId}/messages [get]
func (h *HolidayController) GetMessages(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	holidayID, ok := uuidParam(c, "holidayId")
	if !ok {
		return
	}
	if err := h.holidayService.EnsureMember(c.Request.Context(), holidayID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	messages, err := h.messageService.GetRecentMessages(c.Request.Context(), holidayID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewMessageResponses(messages), "Messages fetched successfully")
}
