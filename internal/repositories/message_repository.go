package repositories

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"holiday-api/internal/models/db_models"
)

type MessageRepository interface {
	WithTx(tx *gorm.DB) MessageRepository

	Insert(ctx context.Context, message *db_models.Message) error

	// FindRecentByHoliday returns the newest limit messages, oldest first.
	FindRecentByHoliday(ctx context.Context, holidayID uuid.UUID, limit int) ([]db_models.Message, error)

	DeleteByHoliday(ctx context.Context, holidayID uuid.UUID) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) WithTx(tx *gorm.DB) MessageRepository {
	return &messageRepository{db: tx}
}

func (r *messageRepository) Insert(ctx context.Context, message *db_models.Message) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(message).Error
}

func (r *messageRepository) FindRecentByHoliday(ctx context.Context, holidayID uuid.UUID, limit int) ([]db_models.Message, error) {
	var messages []db_models.Message
	err := r.db.WithContext(ctx).
		Preload("Participant").
		Where("holiday_id = ?", holidayID).
		Order("send_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].SendAt.Before(messages[j].SendAt)
	})
	return messages, nil
}

func (r *messageRepository) DeleteByHoliday(ctx context.Context, holidayID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("holiday_id = ?", holidayID).
		Delete(&db_models.Message{}).Error
}
