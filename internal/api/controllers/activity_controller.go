package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"holiday-api/internal/models/db_models"
	"holiday-api/internal/models/request_models"
	"holiday-api/internal/models/response_models"
	"holiday-api/internal/services"
	"holiday-api/pkg/utils"
)

type ActivityController struct {
	activityService    services.ActivityServiceInterface
	participateService services.ParticipateServiceInterface
	holidayService     services.HolidayServiceInterface
}

func NewActivityController(
	activityService services.ActivityServiceInterface,
	participateService services.ParticipateServiceInterface,
	holidayService services.HolidayServiceInterface,
) *ActivityController {
	return &ActivityController{
		activityService:    activityService,
		participateService: participateService,
		holidayService:     holidayService,
	}
}

func activityInput(req request_models.ActivityRequest) (services.ActivityInput, error) {
	start, end, err := parseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return services.ActivityInput{}, err
	}
	return services.ActivityInput{
		HolidayID:   uuid.MustParse(req.HolidayID),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		StartDate:   start,
		EndDate:     end,
		Location:    toLocation(req.LocationFields),
	}, nil
}

// memberActivity loads the activity in the path and checks the caller
// belongs to its holiday.
func (a *ActivityController) memberActivity(c *gin.Context) (*db_models.Activity, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	activityID, ok := uuidParam(c, "activityId")
	if !ok {
		return nil, false
	}

	activity, err := a.activityService.GetActivityById(c.Request.Context(), activityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return nil, false
	}
	if err := a.holidayService.EnsureMember(c.Request.Context(), activity.HolidayID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return nil, false
	}
	return activity, true
}

// CreateActivity godoc
// @Summary Add an activity to a holiday
// @Tags Activities
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "Activity picture"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/activities [post]
func (a *ActivityController) CreateActivity(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.ActivityRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	input, err := activityInput(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if err := a.holidayService.EnsureMember(c.Request.Context(), input.HolidayID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	picture, closePicture, err := uploadedPicture(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	defer closePicture()

	activity, err := a.activityService.AddActivity(c.Request.Context(), input, picture)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewActivityResponse(*activity), "Activity created successfully")
}

// GetActivity godoc
// @Summary Get an activity
// @Tags Activities
// @Produce json
// @Param activityId path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/activities/{activityId} [get]
func (a *ActivityController) GetActivity(c *gin.Context) {
	activity, ok := a.memberActivity(c)
	if !ok {
		return
	}
	utils.RespondSuccess(c, response_models.NewActivityResponse(*activity), "Activity fetched successfully")
}

// UpdateActivity godoc
// @Summary Update an activity
// @Tags Activities
// @Accept multipart/form-data
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param file formData file false "New picture"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/activities/{activityId} [put]
func (a *ActivityController) UpdateActivity(c *gin.Context) {
	activity, ok := a.memberActivity(c)
	if !ok {
		return
	}

	var req request_models.ActivityRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	input, err := activityInput(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if input.HolidayID != activity.HolidayID {
		utils.RespondError(c, http.StatusBadRequest, "An activity cannot move to another holiday")
		return
	}

	picture, closePicture, err := uploadedPicture(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	defer closePicture()

	updated, err := a.activityService.UpdateActivity(c.Request.Context(), activity.ID, input, services.PictureEdit{
		Upload:         picture,
		DeleteExisting: req.DeleteImage,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewActivityResponse(*updated), "Activity updated successfully")
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Description Removes the activity with its participations
// @Tags Activities
// @Produce json
// @Param activityId path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/activities/{activityId} [delete]
func (a *ActivityController) DeleteActivity(c *gin.Context) {
	activity, ok := a.memberActivity(c)
	if !ok {
		return
	}

	if err := a.activityService.DeleteActivity(c.Request.Context(), activity.ID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}

// GetParticipants godoc
// @Summary Activity participants
// @Description isParticipated=false lists holiday members who have not joined
// @Tags Activities
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param isParticipated query bool false "Joined (default) or not joined"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/activities/{activityId}/participants [get]
func (a *ActivityController) GetParticipants(c *gin.Context) {
	activity, ok := a.memberActivity(c)
	if !ok {
		return
	}
	participated, ok := boolQuery(c, "isParticipated", true)
	if !ok {
		return
	}

	var list []db_models.Participant
	var err error
	if participated {
		list, err = a.participateService.GetParticipantsByActivity(c.Request.Context(), activity.ID)
	} else {
		list, err = a.participateService.GetParticipantsNotInActivity(c.Request.Context(), activity.ID)
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewParticipantResponses(list), "Participants fetched successfully")
}

// AddParticipant godoc
// @Summary Sign a holiday member up for an activity
// @Tags Activities
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param participantId path string true "Participant ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/activities/{activityId}/participants/{participantId} [post]
func (a *ActivityController) AddParticipant(c *gin.Context) {
	activity, ok := a.memberActivity(c)
	if !ok {
		return
	}
	participantID, ok := uuidParam(c, "participantId")
	if !ok {
		return
	}

	if err := a.participateService.AddParticipate(c.Request.Context(), activity.ID, participantID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Participant added to activity")
}

// RemoveParticipant godoc
// @Summary Remove a participant from an activity
// @Tags Activities
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param participantId path string true "Participant ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/activities/{activityId}/participants/{participantId} [delete]
func (a *ActivityController) RemoveParticipant(c *gin.Context) {
	activity, ok := a.memberActivity(c)
	if !ok {
		return
	}
	participantID, ok := uuidParam(c, "participantId")
	if !ok {
		return
	}

	if err := a.participateService.RemoveParticipate(c.Request.Context(), activity.ID, participantID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Participant removed from activity")
}
