package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"holiday-api/internal/models/db_models"
	"holiday-api/internal/repositories"
	"holiday-api/pkg/utils"
)

// ActivityInput carries the mutable fields of an activity.
type ActivityInput struct {
	HolidayID   uuid.UUID
	Name        string
	Description *string
	Price       float64
	StartDate   time.Time
	EndDate     time.Time
	Location    db_models.Location
}

func (in ActivityInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return utils.ErrInvalidInput
	}
	if in.Price < 0 {
		return utils.ErrInvalidPrice
	}
	if !in.StartDate.Before(in.EndDate) {
		return utils.ErrInvalidDateRange
	}
	return nil
}

type ActivityServiceInterface interface {
	AddActivity(ctx context.Context, input ActivityInput, picture *Picture) (*db_models.Activity, error)
	GetActivityById(ctx context.Context, id uuid.UUID) (*db_models.Activity, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, input ActivityInput, edit PictureEdit) (*db_models.Activity, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	DeleteActivitiesForHoliday(ctx context.Context, holidayID uuid.UUID) error
}

type ActivityService struct {
	activities   repositories.ActivityRepository
	holidays     repositories.HolidayRepository
	validator    LocationValidator
	pictures     PictureStore
	stockPicture string
}

func NewActivityService(
	activities repositories.ActivityRepository,
	holidays repositories.HolidayRepository,
	validator LocationValidator,
	pictures PictureStore,
	stockPicture string,
) ActivityServiceInterface {
	return &ActivityService{
		activities:   activities,
		holidays:     holidays,
		validator:    validator,
		pictures:     pictures,
		stockPicture: stockPicture,
	}
}

// Activity dates are not checked against the holiday window.
func (s *ActivityService) AddActivity(ctx context.Context, input ActivityInput, picture *Picture) (*db_models.Activity, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	holiday, err := s.holidays.FindById(ctx, input.HolidayID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load holiday", map[string]interface{}{
			"holiday_id": input.HolidayID.String(),
		})
	}
	if holiday == nil {
		return nil, utils.ErrHolidayNotFound
	}

	if err := validateLocation(ctx, s.validator, input.Location); err != nil {
		return nil, err
	}

	picturePath, err := resolveNewPicture(ctx, s.pictures, picture, s.stockPicture)
	if err != nil {
		return nil, err
	}

	activity := &db_models.Activity{
		Name:         input.Name,
		Description:  input.Description,
		ActivityPath: picturePath,
		Price:        input.Price,
		StartDate:    input.StartDate.UTC(),
		EndDate:      input.EndDate.UTC(),
		HolidayID:    input.HolidayID,
		Location:     input.Location,
	}
	if err := s.activities.Insert(ctx, activity); err != nil {
		dropPicture(ctx, s.pictures, picturePath)
		return nil, storeFailure(err, "Failed to add activity", map[string]interface{}{
			"holiday_id": input.HolidayID.String(),
		})
	}
	return activity, nil
}

func (s *ActivityService) GetActivityById(ctx context.Context, id uuid.UUID) (*db_models.Activity, error) {
	activity, err := s.activities.FindById(ctx, id)
	if err != nil {
		return nil, storeFailure(err, "Failed to load activity", map[string]interface{}{
			"activity_id": id.String(),
		})
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	return activity, nil
}

func (s *ActivityService) UpdateActivity(ctx context.Context, id uuid.UUID, input ActivityInput, edit PictureEdit) (*db_models.Activity, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	activity, err := s.GetActivityById(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateLocation(ctx, s.validator, input.Location); err != nil {
		return nil, err
	}

	next, obsolete, err := resolveEditedPicture(ctx, s.pictures, edit, activity.ActivityPath, s.stockPicture)
	if err != nil {
		return nil, err
	}

	activity.Name = input.Name
	activity.Description = input.Description
	activity.Price = input.Price
	activity.StartDate = input.StartDate.UTC()
	activity.EndDate = input.EndDate.UTC()
	activity.ActivityPath = next
	activity.Location.Street = input.Location.Street
	activity.Location.Number = input.Location.Number
	activity.Location.Locality = input.Location.Locality
	activity.Location.PostalCode = input.Location.PostalCode
	activity.Location.Country = input.Location.Country

	if err := s.activities.Update(ctx, activity); err != nil {
		if edit.Upload != nil {
			dropPicture(ctx, s.pictures, next)
		}
		return nil, storeFailure(err, "Failed to update activity", map[string]interface{}{
			"activity_id": id.String(),
		})
	}

	if obsolete != next {
		dropPicture(ctx, s.pictures, obsolete)
	}
	return activity, nil
}

func (s *ActivityService) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	activity, err := s.GetActivityById(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.activities.Delete(ctx, id)
	if err != nil {
		return storeFailure(err, "Failed to delete activity", map[string]interface{}{
			"activity_id": id.String(),
		})
	}
	if n == 0 {
		return utils.ErrActivityNotFound
	}

	dropPicture(ctx, s.pictures, activity.ActivityPath)
	return nil
}

func (s *ActivityService) DeleteActivitiesForHoliday(ctx context.Context, holidayID uuid.UUID) error {
	return storeFailure(s.activities.DeleteByHoliday(ctx, holidayID), "Failed to delete activities", map[string]interface{}{
		"holiday_id": holidayID.String(),
	})
}
