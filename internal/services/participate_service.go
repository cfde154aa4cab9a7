package services

import (
	"context"

	"github.com/google/uuid"

	"holiday-api/internal/models/db_models"
	"holiday-api/internal/repositories"
	"holiday-api/pkg/utils"
)

type ParticipateServiceInterface interface {
	// AddParticipate requires an accepted invitation to the activity's holiday.
	AddParticipate(ctx context.Context, activityID, participantID uuid.UUID) error
	RemoveParticipate(ctx context.Context, activityID, participantID uuid.UUID) error
	GetParticipantsByActivity(ctx context.Context, activityID uuid.UUID) ([]db_models.Participant, error)
	GetParticipantsNotInActivity(ctx context.Context, activityID uuid.UUID) ([]db_models.Participant, error)
	DeleteParticipatesForActivity(ctx context.Context, activityID uuid.UUID) error
	DeleteParticipatesForParticipantInHoliday(ctx context.Context, participantID, holidayID uuid.UUID) error
}

type ParticipateService struct {
	participates repositories.ParticipateRepository
	activities   repositories.ActivityRepository
	invitations  repositories.InvitationRepository
	participants repositories.ParticipantRepository
}

func NewParticipateService(
	participates repositories.ParticipateRepository,
	activities repositories.ActivityRepository,
	invitations repositories.InvitationRepository,
	participants repositories.ParticipantRepository,
) ParticipateServiceInterface {
	return &ParticipateService{
		participates: participates,
		activities:   activities,
		invitations:  invitations,
		participants: participants,
	}
}

func (s *ParticipateService) activity(ctx context.Context, activityID uuid.UUID) (*db_models.Activity, error) {
	activity, err := s.activities.FindById(ctx, activityID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load activity", map[string]interface{}{
			"activity_id": activityID.String(),
		})
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	return activity, nil
}

func (s *ParticipateService) AddParticipate(ctx context.Context, activityID, participantID uuid.UUID) error {
	fields := map[string]interface{}{
		"activity_id":    activityID.String(),
		"participant_id": participantID.String(),
	}

	activity, err := s.activity(ctx, activityID)
	if err != nil {
		return err
	}

	member, err := s.invitations.IsAcceptedMember(ctx, activity.HolidayID, participantID)
	if err != nil {
		return storeFailure(err, "Failed to check membership", fields)
	}
	if !member {
		return utils.ErrNotHolidayMember
	}

	exists, err := s.participates.Exists(ctx, activityID, participantID)
	if err != nil {
		return storeFailure(err, "Failed to check participation", fields)
	}
	if exists {
		return utils.ErrParticipationAlreadyExists
	}

	if err := s.participates.Insert(ctx, &db_models.Participate{ActivityID: activityID, ParticipantID: participantID}); err != nil {
		if isDuplicate(err) {
			return utils.ErrParticipationAlreadyExists
		}
		return storeFailure(err, "Failed to add participation", fields)
	}
	return nil
}

func (s *ParticipateService) RemoveParticipate(ctx context.Context, activityID, participantID uuid.UUID) error {
	n, err := s.participates.DeleteByActivityAndParticipant(ctx, activityID, participantID)
	if err != nil {
		return storeFailure(err, "Failed to remove participation", map[string]interface{}{
			"activity_id":    activityID.String(),
			"participant_id": participantID.String(),
		})
	}
	if n == 0 {
		return utils.ErrParticipateNotFound
	}
	return nil
}

func (s *ParticipateService) GetParticipantsByActivity(ctx context.Context, activityID uuid.UUID) ([]db_models.Participant, error) {
	if _, err := s.activity(ctx, activityID); err != nil {
		return nil, err
	}
	participants, err := s.participates.FindParticipantsByActivity(ctx, activityID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load activity participants", map[string]interface{}{
			"activity_id": activityID.String(),
		})
	}
	return participants, nil
}

func (s *ParticipateService) GetParticipantsNotInActivity(ctx context.Context, activityID uuid.UUID) ([]db_models.Participant, error) {
	if _, err := s.activity(ctx, activityID); err != nil {
		return nil, err
	}
	participants, err := s.participants.FindNotInActivity(ctx, activityID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load candidates", map[string]interface{}{
			"activity_id": activityID.String(),
		})
	}
	return participants, nil
}

func (s *ParticipateService) DeleteParticipatesForActivity(ctx context.Context, activityID uuid.UUID) error {
	return storeFailure(s.participates.DeleteByActivity(ctx, activityID), "Failed to delete participations", map[string]interface{}{
		"activity_id": activityID.String(),
	})
}

func (s *ParticipateService) DeleteParticipatesForParticipantInHoliday(ctx context.Context, participantID, holidayID uuid.UUID) error {
	return storeFailure(s.participates.DeleteByParticipantInHoliday(ctx, participantID, holidayID), "Failed to delete participations", map[string]interface{}{
		"holiday_id":     holidayID.String(),
		"participant_id": participantID.String(),
	})
}
