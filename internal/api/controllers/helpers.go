package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"holiday-api/internal/models/db_models"
	"holiday-api/internal/models/request_models"
	"holiday-api/internal/services"
	"holiday-api/pkg/middleware"
	"holiday-api/pkg/utils"
)

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return id, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// boolQuery reads an optional boolean query parameter.
func boolQuery(c *gin.Context, name string, fallback bool) (bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return false, false
	}
	return v, true
}

func toLocation(f request_models.LocationFields) db_models.Location {
	return db_models.Location{
		Street:     f.Street,
		Number:     f.Number,
		Locality:   f.Locality,
		PostalCode: f.PostalCode,
		Country:    f.Country,
	}
}

func parseWindow(start, end string) (time.Time, time.Time, error) {
	s, err := utils.ParseDateTime(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := utils.ParseDateTime(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}

// uploadedPicture returns the multipart "file" part, or nil when none was
// sent. The caller must call the returned close func.
func uploadedPicture(c *gin.Context) (*services.Picture, func(), error) {
	header, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, func() {}, utils.ErrInvalidInput
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, utils.ErrInvalidInput
	}
	pic := &services.Picture{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	}
	return pic, func() { file.Close() }, nil
}
