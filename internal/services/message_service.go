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

// HistorySize is how many messages a holiday chat replays.
const HistorySize = 100

type MessageServiceInterface interface {
	AddMessage(ctx context.Context, participantID, holidayID uuid.UUID, content string) (*db_models.Message, error)
	GetRecentMessages(ctx context.Context, holidayID uuid.UUID) ([]db_models.Message, error)
	DeleteMessages(ctx context.Context, holidayID uuid.UUID) error
}

type MessageService struct {
	messages     repositories.MessageRepository
	holidays     repositories.HolidayRepository
	participants repositories.ParticipantRepository
	now          func() time.Time
}

func NewMessageService(
	messages repositories.MessageRepository,
	holidays repositories.HolidayRepository,
	participants repositories.ParticipantRepository,
) *MessageService {
	return &MessageService{
		messages:     messages,
		holidays:     holidays,
		participants: participants,
		now:          time.Now,
	}
}

func (s *MessageService) AddMessage(ctx context.Context, participantID, holidayID uuid.UUID, content string) (*db_models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, utils.ErrInvalidInput
	}
	fields := map[string]interface{}{
		"holiday_id":     holidayID.String(),
		"participant_id": participantID.String(),
	}

	participant, err := s.participants.FindById(ctx, participantID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load participant", fields)
	}
	if participant == nil {
		return nil, utils.ErrParticipantNotFound
	}

	holiday, err := s.holidays.FindById(ctx, holidayID)
	if err != nil {
		return nil, storeFailure(err, "Failed to load holiday", fields)
	}
	if holiday == nil {
		return nil, utils.ErrHolidayNotFound
	}

	message := &db_models.Message{
		SendAt:        s.now().UTC(),
		Content:       content,
		HolidayID:     holidayID,
		ParticipantID: participantID,
	}
	if err := s.messages.Insert(ctx, message); err != nil {
		return nil, storeFailure(err, "Failed to add message", fields)
	}
	message.Participant = *participant
	return message, nil
}

func (s *MessageService) GetRecentMessages(ctx context.Context, holidayID uuid.UUID) ([]db_models.Message, error) {
	messages, err := s.messages.FindRecentByHoliday(ctx, holidayID, HistorySize)
	if err != nil {
		return nil, storeFailure(err, "Failed to load messages", map[string]interface{}{
			"holiday_id": holidayID.String(),
		})
	}
	return messages, nil
}

func (s *MessageService) DeleteMessages(ctx context.Context, holidayID uuid.UUID) error {
	return storeFailure(s.messages.DeleteByHoliday(ctx, holidayID), "Failed to delete messages", map[string]interface{}{
		"holiday_id": holidayID.String(),
	})
}
