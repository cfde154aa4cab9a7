package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

type errorMapping struct {
	target  error
	code    int
	message string
}

// Order matters: wrapped sentinels must come before their roots.
var serviceErrors = []errorMapping{
	{ErrHolidayNotFound, http.StatusNotFound, "Holiday not found"},
	{ErrActivityNotFound, http.StatusNotFound, "Activity not found"},
	{ErrInvitationNotFound, http.StatusNotFound, "Invitation not found"},
	{ErrParticipantNotFound, http.StatusNotFound, "Participant not found"},
	{ErrParticipateNotFound, http.StatusNotFound, "Participation not found"},
	{ErrInvitationAlreadyExists, http.StatusConflict, "Participant is already invited to this holiday"},
	{ErrParticipationAlreadyExists, http.StatusConflict, "Participant already joined this activity"},
	{ErrEmailAlreadyExists, http.StatusConflict, "Email already registered"},
	{ErrInvalidDateRange, http.StatusBadRequest, "Start date must be before end date"},
	{ErrInvalidPrice, http.StatusBadRequest, "Price must not be negative"},
	{ErrInvalidInput, http.StatusBadRequest, "Invalid request"},
	{ErrNotHolidayMember, http.StatusForbidden, "You are not a member of this holiday"},
	{ErrNotHolidayOwner, http.StatusForbidden, "Only the creator can do this"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
	{ErrInvalidAddress, http.StatusBadRequest, "The address is invalid"},
	{ErrLocationServiceUnavailable, http.StatusBadRequest, "The address could not be verified"},
	{ErrUnsupportedPictureType, http.StatusBadRequest, "Only jpg, jpeg and png pictures are accepted"},
	{ErrPictureTooLarge, http.StatusBadRequest, "The picture is too large"},
	{ErrPictureStorage, http.StatusBadRequest, "The picture could not be saved"},
}

func HandleServiceError(c *gin.Context, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			RespondError(c, m.code, m.message)
			return
		}
	}

	if errors.Is(err, ErrDatabaseError) {
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("Database error")
	} else {
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("Unknown error")
	}
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
