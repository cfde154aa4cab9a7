package services

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"holiday-api/pkg/utils"
)

// domainErrors are returned to callers as they are; anything else coming out
// of the store is logged and reported as utils.ErrDatabaseError.
var domainErrors = []error{
	utils.ErrHolidayNotFound,
	utils.ErrActivityNotFound,
	utils.ErrInvitationNotFound,
	utils.ErrParticipantNotFound,
	utils.ErrParticipateNotFound,
	utils.ErrInvitationAlreadyExists,
	utils.ErrParticipationAlreadyExists,
	utils.ErrInvalidDateRange,
	utils.ErrInvalidPrice,
	utils.ErrInvalidInput,
	utils.ErrNotHolidayMember,
	utils.ErrNotHolidayOwner,
	utils.ErrEmailAlreadyExists,
	utils.ErrInvalidCredentials,
	utils.ErrLocationValidation,
	utils.ErrPictureStorage,
	utils.ErrDatabaseError,
}

func isDomainError(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// storeFailure logs err with fields and returns the sentinel to hand back.
func storeFailure(err error, msg string, fields map[string]interface{}) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}

	var event *zerolog.Event
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		event = log.Warn()
	} else {
		event = log.Error()
	}
	event.Err(err).Fields(fields).Msg(msg)
	return utils.ErrDatabaseError
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
