package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"holiday-api/internal/infra"
	"holiday-api/internal/models/db_models"
	"holiday-api/internal/repositories"
	"holiday-api/pkg/utils"
)

// HolidayInput carries the mutable fields of a holiday.
type HolidayInput struct {
	Name        string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	IsPublish   bool
	Location    db_models.Location
}

func (in HolidayInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return utils.ErrInvalidInput
	}
	if !in.StartDate.Before(in.EndDate) {
		return utils.ErrInvalidDateRange
	}
	return nil
}

type HolidayServiceInterface interface {
	// CreateHoliday stores the holiday together with an accepted invitation
	// for its creator.
	CreateHoliday(ctx context.Context, creatorID uuid.UUID, input HolidayInput, picture *Picture) (*db_models.Holiday, error)
	UpdateHoliday(ctx context.Context, holidayID uuid.UUID, input HolidayInput, edit PictureEdit) (*db_models.Holiday, error)
	GetHolidayById(ctx context.Context, holidayID uuid.UUID) (*db_models.Holiday, error)

	// DeleteHoliday removes activities with their participations, then
	// invitations, then messages, then the holiday, all in one transaction.
	DeleteHoliday(ctx context.Context, holidayID uuid.UUID) error

	// LeaveHoliday drops the participant's invitation and participations and
	// deletes the holiday when no accepted member is left.
	LeaveHoliday(ctx context.Context, holidayID, participantID uuid.UUID) error

	ListHolidaysForParticipant(ctx context.Context, participantID uuid.UUID) ([]db_models.Holiday, error)
	ListPublishedHolidays(ctx context.Context) ([]db_models.Holiday, error)

	EnsureMember(ctx context.Context, holidayID, participantID uuid.UUID) error
	EnsureCreator(ctx context.Context, holidayID, participantID uuid.UUID) error
}

type HolidayService struct {
	db           *gorm.DB
	holidays     repositories.HolidayRepository
	invitations  repositories.InvitationRepository
	activities   repositories.ActivityRepository
	participates repositories.ParticipateRepository
	messages     repositories.MessageRepository
	participants repositories.ParticipantRepository
	validator    LocationValidator
	pictures     PictureStore
	stockPicture string
}

func NewHolidayService(
	db *gorm.DB,
	holidays repositories.HolidayRepository,
	invitations repositories.InvitationRepository,
	activities repositories.ActivityRepository,
	participates repositories.ParticipateRepository,
	messages repositories.MessageRepository,
	participants repositories.ParticipantRepository,
	validator LocationValidator,
	pictures PictureStore,
	stockPicture string,
) HolidayServiceInterface {
	return &HolidayService{
		db:           db,
		holidays:     holidays,
		invitations:  invitations,
		activities:   activities,
		participates: participates,
		messages:     messages,
		participants: participants,
		validator:    validator,
		pictures:     pictures,
		stockPicture: stockPicture,
	}
}

func (s *HolidayService) CreateHoliday(ctx context.Context, creatorID uuid.UUID, input HolidayInput, picture *Picture) (*db_models.Holiday, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := validateLocation(ctx, s.validator, input.Location); err != nil {
		return nil, err
	}

	picturePath, err := resolveNewPicture(ctx, s.pictures, picture, s.stockPicture)
	if err != nil {
		return nil, err
	}

	holiday := &db_models.Holiday{
		Name:        input.Name,
		Description: input.Description,
		HolidayPath: picturePath,
		StartDate:   input.StartDate.UTC(),
		EndDate:     input.EndDate.UTC(),
		IsPublish:   input.IsPublish,
		CreatorID:   creatorID,
		Location:    input.Location,
	}

	err = infra.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		creator, err := s.participants.WithTx(tx).FindById(ctx, creatorID)
		if err != nil {
			return err
		}
		if creator == nil {
			return utils.ErrParticipantNotFound
		}

		if err := s.holidays.WithTx(tx).Insert(ctx, holiday); err != nil {
			return err
		}
		return s.invitations.WithTx(tx).Insert(ctx, &db_models.Invitation{
			HolidayID:     holiday.ID,
			ParticipantID: creatorID,
			IsAccepted:    true,
		})
	})
	if err != nil {
		dropPicture(ctx, s.pictures, picturePath)
		return nil, storeFailure(err, "Failed to create holiday", map[string]interface{}{
			"participant_id": creatorID.String(),
		})
	}

	log.Info().Str("holiday_id", holiday.ID.String()).Str("participant_id", creatorID.String()).Msg("Holiday created")
	return holiday, nil
}

func (s *HolidayService) UpdateHoliday(ctx context.Context, holidayID uuid.UUID, input HolidayInput, edit PictureEdit) (*db_models.Holiday, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	holiday, err := s.holidays.FindById(ctx, holidayID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load holiday", map[string]interface{}{
			"holiday_id": holidayID.String(),
		})
	}
	if holiday == nil {
		return nil, utils.ErrHolidayNotFound
	}

	if err := validateLocation(ctx, s.validator, input.Location); err != nil {
		return nil, err
	}

	next, obsolete, err := resolveEditedPicture(ctx, s.pictures, edit, holiday.HolidayPath, s.stockPicture)
	if err != nil {
		return nil, err
	}

	holiday.Name = input.Name
	holiday.Description = input.Description
	holiday.StartDate = input.StartDate.UTC()
	holiday.EndDate = input.EndDate.UTC()
	holiday.IsPublish = input.IsPublish
	holiday.HolidayPath = next
	holiday.Location.Street = input.Location.Street
	holiday.Location.Number = input.Location.Number
	holiday.Location.Locality = input.Location.Locality
	holiday.Location.PostalCode = input.Location.PostalCode
	holiday.Location.Country = input.Location.Country

	if err := s.holidays.Update(ctx, holiday); err != nil {
		if edit.Upload != nil {
			dropPicture(ctx, s.pictures, next)
		}
		return nil, storeFailure(err, "Failed to update holiday", map[string]interface{}{
			"holiday_id": holidayID.String(),
		})
	}

	if obsolete != next {
		dropPicture(ctx, s.pictures, obsolete)
	}
	return holiday, nil
}

func (s *HolidayService) GetHolidayById(ctx context.Context, holidayID uuid.UUID) (*db_models.Holiday, error) {
	fields := map[string]interface{}{"holiday_id": holidayID.String()}

	holiday, err := s.holidays.FindById(ctx, holidayID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load holiday", fields)
	}
	if holiday == nil {
		return nil, utils.ErrHolidayNotFound
	}

	participants, err := s.participants.FindByHoliday(ctx, holidayID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load holiday participants", fields)
	}
	holiday.Participants = participants
	return holiday, nil
}

func (s *HolidayService) DeleteHoliday(ctx context.Context, holidayID uuid.UUID) error {
	var removed *db_models.Holiday
	err := infra.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		removed, err = s.deleteHolidayTx(ctx, tx, holidayID)
		return err
	})
	if err != nil {
		return storeFailure(err, "Failed to delete holiday", map[string]interface{}{
			"holiday_id": holidayID.String(),
		})
	}

	s.dropHolidayPictures(ctx, removed)
	log.Info().Str("holiday_id", holidayID.String()).Msg("Holiday deleted")
	return nil
}

// deleteHolidayTx runs the cascade on tx and returns what was removed.
func (s *HolidayService) deleteHolidayTx(ctx context.Context, tx *gorm.DB, holidayID uuid.UUID) (*db_models.Holiday, error) {
	holiday, err := s.holidays.WithTx(tx).FindById(ctx, holidayID)
	if err != nil {
		return nil, err
	}
	if holiday == nil {
		return nil, utils.ErrHolidayNotFound
	}

	if err := s.activities.WithTx(tx).DeleteByHoliday(ctx, holidayID); err != nil {
		return nil, err
	}
	if err := s.invitations.WithTx(tx).DeleteByHoliday(ctx, holidayID); err != nil {
		return nil, err
	}
	if err := s.messages.WithTx(tx).DeleteByHoliday(ctx, holidayID); err != nil {
		return nil, err
	}

	n, err := s.holidays.WithTx(tx).Delete(ctx, holidayID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Lost a race with a concurrent delete.
		return nil, utils.ErrHolidayNotFound
	}
	return holiday, nil
}

func (s *HolidayService) dropHolidayPictures(ctx context.Context, holiday *db_models.Holiday) {
	if holiday == nil {
		return
	}
	dropPicture(ctx, s.pictures, holiday.HolidayPath)
	for _, a := range holiday.Activities {
		dropPicture(ctx, s.pictures, a.ActivityPath)
	}
}

func (s *HolidayService) LeaveHoliday(ctx context.Context, holidayID, participantID uuid.UUID) error {
	var removed *db_models.Holiday
	err := infra.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		invitations := s.invitations.WithTx(tx)

		n, err := invitations.DeleteByHolidayAndParticipant(ctx, holidayID, participantID)
		if err != nil {
			return err
		}
		if n == 0 {
			return utils.ErrInvitationNotFound
		}

		if err := s.participates.WithTx(tx).DeleteByParticipantInHoliday(ctx, participantID, holidayID); err != nil {
			return err
		}

		remaining, err := invitations.HasAcceptedParticipants(ctx, holidayID)
		if err != nil {
			return err
		}
		if remaining {
			return nil
		}

		removed, err = s.deleteHolidayTx(ctx, tx, holidayID)
		return err
	})
	if err != nil {
		return storeFailure(err, "Failed to leave holiday", map[string]interface{}{
			"holiday_id":     holidayID.String(),
			"participant_id": participantID.String(),
		})
	}

	if removed != nil {
		s.dropHolidayPictures(ctx, removed)
		log.Info().Str("holiday_id", holidayID.String()).Msg("Holiday deleted after last participant left")
	}
	return nil
}

func (s *HolidayService) ListHolidaysForParticipant(ctx context.Context, participantID uuid.UUID) ([]db_models.Holiday, error) {
	holidays, err := s.holidays.FindByParticipant(ctx, participantID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load holidays", map[string]interface{}{
			"participant_id": participantID.String(),
		})
	}
	return holidays, nil
}

func (s *HolidayService) ListPublishedHolidays(ctx context.Context) ([]db_models.Holiday, error) {
	holidays, err := s.holidays.FindPublished(ctx)
	if err != nil {
		return nil, storeFailure(err, "Failed to load published holidays", nil)
	}
	return holidays, nil
}

func (s *HolidayService) EnsureMember(ctx context.Context, holidayID, participantID uuid.UUID) error {
	member, err := s.invitations.IsAcceptedMember(ctx, holidayID, participantID)
	if err != nil {
		return storeFailure(err, "Failed to check membership", map[string]interface{}{
			"holiday_id":     holidayID.String(),
			"participant_id": participantID.String(),
		})
	}
	if !member {
		return utils.ErrNotHolidayMember
	}
	return nil
}

func (s *HolidayService) EnsureCreator(ctx context.Context, holidayID, participantID uuid.UUID) error {
	holiday, err := s.holidays.FindById(ctx, holidayID)
	if err != nil {
		return storeFailure(err, "Failed to load holiday", map[string]interface{}{
			"holiday_id": holidayID.String(),
		})
	}
	if holiday == nil {
		return utils.ErrHolidayNotFound
	}
	if holiday.CreatorID != participantID {
		return utils.ErrNotHolidayOwner
	}
	return nil
}
