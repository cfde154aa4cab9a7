package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"holiday-api/internal/infra"
	"holiday-api/internal/models/db_models"
	"holiday-api/internal/repositories"
	"holiday-api/pkg/utils"
)

type InvitationServiceInterface interface {
	AddInvitation(ctx context.Context, invitation *db_models.Invitation) error
	// CreateInvitations invites every participant or none of them.
	CreateInvitations(ctx context.Context, holidayID, inviterID uuid.UUID, participantIDs []uuid.UUID) error
	AcceptInvitation(ctx context.Context, invitationID, participantID uuid.UUID) error
	RefuseInvitation(ctx context.Context, invitationID, participantID uuid.UUID) error
	GetInvitationsByParticipant(ctx context.Context, participantID uuid.UUID) ([]db_models.Invitation, error)

	DeleteInvitations(ctx context.Context, holidayID uuid.UUID) error
	DeleteInvitationByParticipant(ctx context.Context, holidayID, participantID uuid.UUID) error
	HasRemainingAcceptedParticipants(ctx context.Context, holidayID uuid.UUID) (bool, error)
}

type InvitationService struct {
	db           *gorm.DB
	invitations  repositories.InvitationRepository
	holidays     repositories.HolidayRepository
	participants repositories.ParticipantRepository
	mail         IMailService
}

func NewInvitationService(
	db *gorm.DB,
	invitations repositories.InvitationRepository,
	holidays repositories.HolidayRepository,
	participants repositories.ParticipantRepository,
	mail IMailService,
) InvitationServiceInterface {
	return &InvitationService{
		db:           db,
		invitations:  invitations,
		holidays:     holidays,
		participants: participants,
		mail:         mail,
	}
}

func (s *InvitationService) AddInvitation(ctx context.Context, invitation *db_models.Invitation) error {
	if err := s.invitations.Insert(ctx, invitation); err != nil {
		if isDuplicate(err) {
			return utils.ErrInvitationAlreadyExists
		}
		return storeFailure(err, "Failed to add invitation", map[string]interface{}{
			"holiday_id":     invitation.HolidayID.String(),
			"participant_id": invitation.ParticipantID.String(),
		})
	}
	return nil
}

func (s *InvitationService) CreateInvitations(ctx context.Context, holidayID, inviterID uuid.UUID, participantIDs []uuid.UUID) error {
	if len(participantIDs) == 0 {
		return utils.ErrInvalidInput
	}

	var holiday *db_models.Holiday
	var invitees []*db_models.Participant

	err := infra.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		invitations := s.invitations.WithTx(tx)
		participants := s.participants.WithTx(tx)

		var err error
		holiday, err = s.holidays.WithTx(tx).FindById(ctx, holidayID)
		if err != nil {
			return err
		}
		if holiday == nil {
			return utils.ErrHolidayNotFound
		}

		member, err := invitations.IsAcceptedMember(ctx, holidayID, inviterID)
		if err != nil {
			return err
		}
		if !member {
			return utils.ErrNotHolidayMember
		}

		seen := make(map[uuid.UUID]bool, len(participantIDs))
		batch := make([]*db_models.Invitation, 0, len(participantIDs))
		for _, pid := range participantIDs {
			if seen[pid] {
				continue
			}
			seen[pid] = true

			p, err := participants.FindById(ctx, pid)
			if err != nil {
				return err
			}
			if p == nil {
				return utils.ErrParticipantNotFound
			}

			existing, err := invitations.FindByHolidayAndParticipant(ctx, holidayID, pid)
			if err != nil {
				return err
			}
			if existing != nil {
				return utils.ErrInvitationAlreadyExists
			}

			invitees = append(invitees, p)
			batch = append(batch, &db_models.Invitation{HolidayID: holidayID, ParticipantID: pid})
		}

		if err := invitations.InsertMany(ctx, batch); err != nil {
			if isDuplicate(err) {
				return utils.ErrInvitationAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return storeFailure(err, "Failed to create invitations", map[string]interface{}{
			"holiday_id": holidayID.String(),
		})
	}

	s.notifyInvitees(ctx, holiday, inviterID, invitees)
	return nil
}

// notifyInvitees sends the invitation emails once the invitations exist.
func (s *InvitationService) notifyInvitees(ctx context.Context, holiday *db_models.Holiday, inviterID uuid.UUID, invitees []*db_models.Participant) {
	inviterName := "A friend"
	if inviter, err := s.participants.FindById(ctx, inviterID); err == nil && inviter != nil {
		inviterName = inviter.FirstName
	}

	for _, p := range invitees {
		if err := s.mail.SendInvitation(ctx, p.Email, p.FirstName, holiday.Name, inviterName); err != nil {
			log.Warn().Err(err).
				Str("holiday_id", holiday.ID.String()).
				Str("participant_id", p.ID.String()).
				Msg("Failed to send invitation email")
		}
	}
}

// ownedInvitation loads the invitation and checks it belongs to participantID.
func (s *InvitationService) ownedInvitation(ctx context.Context, invitationID, participantID uuid.UUID) (*db_models.Invitation, error) {
	invitation, err := s.invitations.FindById(ctx, invitationID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load invitation", map[string]interface{}{
			"invitation_id": invitationID.String(),
		})
	}
	if invitation == nil || invitation.ParticipantID != participantID {
		return nil, utils.ErrInvitationNotFound
	}
	return invitation, nil
}

func (s *InvitationService) AcceptInvitation(ctx context.Context, invitationID, participantID uuid.UUID) error {
	invitation, err := s.ownedInvitation(ctx, invitationID, participantID)
	if err != nil {
		return err
	}
	if invitation.IsAccepted {
		return nil
	}

	n, err := s.invitations.MarkAccepted(ctx, invitationID)
	if err != nil {
		return storeFailure(err, "Failed to accept invitation", map[string]interface{}{
			"invitation_id": invitationID.String(),
		})
	}
	if n == 0 {
		return utils.ErrInvitationNotFound
	}
	return nil
}

func (s *InvitationService) RefuseInvitation(ctx context.Context, invitationID, participantID uuid.UUID) error {
	if _, err := s.ownedInvitation(ctx, invitationID, participantID); err != nil {
		return err
	}

	n, err := s.invitations.DeleteById(ctx, invitationID)
	if err != nil {
		return storeFailure(err, "Failed to refuse invitation", map[string]interface{}{
			"invitation_id": invitationID.String(),
		})
	}
	if n == 0 {
		return utils.ErrInvitationNotFound
	}
	return nil
}

func (s *InvitationService) GetInvitationsByParticipant(ctx context.Context, participantID uuid.UUID) ([]db_models.Invitation, error) {
	invitations, err := s.invitations.FindPendingByParticipant(ctx, participantID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load invitations", map[string]interface{}{
			"participant_id": participantID.String(),
		})
	}
	return invitations, nil
}

func (s *InvitationService) DeleteInvitations(ctx context.Context, holidayID uuid.UUID) error {
	return storeFailure(s.invitations.DeleteByHoliday(ctx, holidayID), "Failed to delete invitations", map[string]interface{}{
		"holiday_id": holidayID.String(),
	})
}

func (s *InvitationService) DeleteInvitationByParticipant(ctx context.Context, holidayID, participantID uuid.UUID) error {
	n, err := s.invitations.DeleteByHolidayAndParticipant(ctx, holidayID, participantID)
	if err != nil {
		return storeFailure(err, "Failed to delete invitation", map[string]interface{}{
			"holiday_id":     holidayID.String(),
			"participant_id": participantID.String(),
		})
	}
	if n == 0 {
		return utils.ErrInvitationNotFound
	}
	return nil
}

func (s *InvitationService) HasRemainingAcceptedParticipants(ctx context.Context, holidayID uuid.UUID) (bool, error) {
	has, err := s.invitations.HasAcceptedParticipants(ctx, holidayID)
	if err != nil {
		return false, storeFailure(err, "Failed to check remaining participants", map[string]interface{}{
			"holiday_id": holidayID.String(),
		})
	}
	return has, nil
}
