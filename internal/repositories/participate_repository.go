package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"holiday-api/internal/models/db_models"
)

type ParticipateRepository interface {
	WithTx(tx *gorm.DB) ParticipateRepository

	Insert(ctx context.Context, participate *db_models.Participate) error
	Exists(ctx context.Context, activityID, participantID uuid.UUID) (bool, error)
	FindParticipantsByActivity(ctx context.Context, activityID uuid.UUID) ([]db_models.Participant, error)

	DeleteByActivityAndParticipant(ctx context.Context, activityID, participantID uuid.UUID) (int64, error)
	DeleteByActivity(ctx context.Context, activityID uuid.UUID) error
	DeleteByActivities(ctx context.Context, activityIDs []uuid.UUID) error

	// DeleteByParticipantInHoliday removes the participant's signups for
	// every activity of the holiday.
	DeleteByParticipantInHoliday(ctx context.Context, participantID, holidayID uuid.UUID) error
}

type participateRepository struct {
	db *gorm.DB
}

func NewParticipateRepository(db *gorm.DB) ParticipateRepository {
	return &participateRepository{db: db}
}

func (r *participateRepository) WithTx(tx *gorm.DB) ParticipateRepository {
	return &participateRepository{db: tx}
}

func (r *participateRepository) Insert(ctx context.Context, participate *db_models.Participate) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(participate).Error
}

func (r *participateRepository) Exists(ctx context.Context, activityID, participantID uuid.UUID) (bool, error) {
	var participate db_models.Participate
	err := r.db.WithContext(ctx).
		Where("activity_id = ? AND participant_id = ?", activityID, participantID).
		First(&participate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *participateRepository) FindParticipantsByActivity(ctx context.Context, activityID uuid.UUID) ([]db_models.Participant, error) {
	var participants []db_models.Participant
	err := r.db.WithContext(ctx).
		Joins("JOIN participates ON participates.participant_id = participants.id").
		Where("participates.activity_id = ?", activityID).
		Order("participants.first_name ASC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participateRepository) DeleteByActivityAndParticipant(ctx context.Context, activityID, participantID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("activity_id = ? AND participant_id = ?", activityID, participantID).
		Delete(&db_models.Participate{})
	return res.RowsAffected, res.Error
}

func (r *participateRepository) DeleteByActivity(ctx context.Context, activityID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Delete(&db_models.Participate{}).Error
}

func (r *participateRepository) DeleteByActivities(ctx context.Context, activityIDs []uuid.UUID) error {
	if len(activityIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("activity_id IN ?", activityIDs).
		Delete(&db_models.Participate{}).Error
}

func (r *participateRepository) DeleteByParticipantInHoliday(ctx context.Context, participantID, holidayID uuid.UUID) error {
	activities := r.db.Model(&db_models.Activity{}).Select("id").Where("holiday_id = ?", holidayID)
	return r.db.WithContext(ctx).
		Where("participant_id = ? AND activity_id IN (?)", participantID, activities).
		Delete(&db_models.Participate{}).Error
}
