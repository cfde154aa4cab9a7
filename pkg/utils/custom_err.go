package utils

import (
	"errors"
	"fmt"
)

var (
	ErrDatabaseError = errors.New("database error")
	ErrInvalidInput  = errors.New("invalid input")

	ErrHolidayNotFound     = errors.New("holiday not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrParticipateNotFound = errors.New("participation not found")

	ErrInvitationAlreadyExists    = errors.New("invitation already exists")
	ErrParticipationAlreadyExists = errors.New("participation already exists")

	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidPrice     = errors.New("price must not be negative")
	ErrNotHolidayMember = errors.New("participant is not a member of the holiday")
	ErrNotHolidayOwner  = errors.New("participant is not the creator of the holiday")

	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Location validation failures share one root so callers can match the kind.
var (
	ErrLocationValidation         = errors.New("location validation failed")
	ErrInvalidAddress             = fmt.Errorf("%w: address is invalid", ErrLocationValidation)
	ErrLocationServiceUnavailable = fmt.Errorf("%w: address service unavailable", ErrLocationValidation)
)

var (
	ErrPictureStorage         = errors.New("picture storage failed")
	ErrUnsupportedPictureType = fmt.Errorf("%w: unsupported picture type", ErrPictureStorage)
	ErrPictureTooLarge        = fmt.Errorf("%w: picture too large", ErrPictureStorage)
	ErrPictureNotFound        = fmt.Errorf("%w: picture not found", ErrPictureStorage)
)
