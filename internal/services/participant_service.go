package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"holiday-api/internal/models/db_models"
	"holiday-api/internal/models/request_models"
	"holiday-api/internal/repositories"
	"holiday-api/pkg/utils"
)

type ParticipantServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.Participant, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	// SignInExternal is called once an external provider vouched for email.
	SignInExternal(ctx context.Context, provider, email, firstName, lastName string) (string, error)

	GetParticipant(ctx context.Context, id uuid.UUID) (*db_models.Participant, error)
	ListParticipantsByHoliday(ctx context.Context, holidayID uuid.UUID) ([]db_models.Participant, error)
	ListParticipantsNotInHoliday(ctx context.Context, holidayID uuid.UUID) ([]db_models.Participant, error)
	CountParticipants(ctx context.Context) (int64, error)
}

type ParticipantService struct {
	participants repositories.ParticipantRepository
	tokens       *utils.JWTManager
}

func NewParticipantService(participants repositories.ParticipantRepository, tokens *utils.JWTManager) ParticipantServiceInterface {
	return &ParticipantService{
		participants: participants,
		tokens:       tokens,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *ParticipantService) Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.Participant, error) {
	email := normalizeEmail(request.Email)

	existing, err := s.participants.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeFailure(err, "Failed to look up email", nil)
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	participant := &db_models.Participant{
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := s.participants.Insert(ctx, participant); err != nil {
		if isDuplicate(err) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, storeFailure(err, "Failed to register participant", nil)
	}
	return participant, nil
}

func (s *ParticipantService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	participant, err := s.participants.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return "", storeFailure(err, "Failed to look up email", nil)
	}
	if participant == nil || participant.PasswordHash == "" {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(participant.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return s.issueToken(participant.ID)
}

func (s *ParticipantService) SignInExternal(ctx context.Context, provider, email, firstName, lastName string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || provider == "" {
		return "", utils.ErrInvalidInput
	}

	participant, err := s.participants.FindByEmail(ctx, email)
	if err != nil {
		return "", storeFailure(err, "Failed to look up email", nil)
	}

	if participant == nil {
		participant = &db_models.Participant{
			FirstName:        firstName,
			LastName:         lastName,
			Email:            email,
			ExternalProvider: &provider,
		}
		if err := s.participants.Insert(ctx, participant); err != nil {
			return "", storeFailure(err, "Failed to create external participant", nil)
		}
		return s.issueToken(participant.ID)
	}

	if participant.FirstName != firstName || participant.LastName != lastName {
		if err := s.participants.UpdateNames(ctx, participant.ID, firstName, lastName); err != nil {
			return "", storeFailure(err, "Failed to refresh participant names", map[string]interface{}{
				"participant_id": participant.ID.String(),
			})
		}
	}
	return s.issueToken(participant.ID)
}

func (s *ParticipantService) issueToken(id uuid.UUID) (string, error) {
	token, err := s.tokens.CreateToken(id)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id uuid.UUID) (*db_models.Participant, error) {
	participant, err := s.participants.FindById(ctx, id)
	if err != nil {
		return nil, storeFailure(err, "Failed to load participant", map[string]interface{}{
			"participant_id": id.String(),
		})
	}
	if participant == nil {
		return nil, utils.ErrParticipantNotFound
	}
	return participant, nil
}

func (s *ParticipantService) ListParticipantsByHoliday(ctx context.Context, holidayID uuid.UUID) ([]db_models.Participant, error) {
	participants, err := s.participants.FindByHoliday(ctx, holidayID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load holiday participants", map[string]interface{}{
			"holiday_id": holidayID.String(),
		})
	}
	return participants, nil
}

func (s *ParticipantService) ListParticipantsNotInHoliday(ctx context.Context, holidayID uuid.UUID) ([]db_models.Participant, error) {
	participants, err := s.participants.FindNotInHoliday(ctx, holidayID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load invite candidates", map[string]interface{}{
			"holiday_id": holidayID.String(),
		})
	}
	return participants, nil
}

func (s *ParticipantService) CountParticipants(ctx context.Context) (int64, error) {
	n, err := s.participants.Count(ctx)
	if err != nil {
		return 0, storeFailure(err, "Failed to count participants", nil)
	}
	return n, nil
}
