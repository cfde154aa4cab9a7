package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"holiday-api/internal/models/db_models"
)

type ParticipantRepository interface {
	WithTx(tx *gorm.DB) ParticipantRepository

	Insert(ctx context.Context, participant *db_models.Participant) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Participant, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Participant, error)
	UpdateNames(ctx context.Context, id uuid.UUID, firstName, lastName string) error

	// FindByHoliday returns participants holding an accepted invitation.
	FindByHoliday(ctx context.Context, holidayID uuid.UUID) ([]db_models.Participant, error)
	// FindNotInHoliday returns participants with no invitation at all.
	FindNotInHoliday(ctx context.Context, holidayID uuid.UUID) ([]db_models.Participant, error)
	// FindNotInActivity returns accepted members of the activity's holiday
	// who have not joined the activity.
	FindNotInActivity(ctx context.Context, activityID uuid.UUID) ([]db_models.Participant, error)

	Count(ctx context.Context) (int64, error)
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (p *participantRepository) WithTx(tx *gorm.DB) ParticipantRepository {
	return &participantRepository{db: tx}
}

func (p *participantRepository) Insert(ctx context.Context, participant *db_models.Participant) error {
	return p.db.WithContext(ctx).Create(participant).Error
}

func (p *participantRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Participant, error) {
	var participant db_models.Participant
	err := p.db.WithContext(ctx).First(&participant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (p *participantRepository) FindByEmail(ctx context.Context, email string) (*db_models.Participant, error) {
	var participant db_models.Participant
	err := p.db.WithContext(ctx).First(&participant, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (p *participantRepository) UpdateNames(ctx context.Context, id uuid.UUID, firstName, lastName string) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Participant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"first_name": firstName, "last_name": lastName}).Error
}

func (p *participantRepository) FindByHoliday(ctx context.Context, holidayID uuid.UUID) ([]db_models.Participant, error) {
	var participants []db_models.Participant
	err := p.db.WithContext(ctx).
		Joins("JOIN invitations ON invitations.participant_id = participants.id").
		Where("invitations.holiday_id = ? AND invitations.is_accepted = ?", holidayID, true).
		Order("participants.first_name ASC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (p *participantRepository) FindNotInHoliday(ctx context.Context, holidayID uuid.UUID) ([]db_models.Participant, error) {
	invited := p.db.Model(&db_models.Invitation{}).Select("participant_id").Where("holiday_id = ?", holidayID)

	var participants []db_models.Participant
	err := p.db.WithContext(ctx).
		Where("id NOT IN (?)", invited).
		Order("first_name ASC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (p *participantRepository) FindNotInActivity(ctx context.Context, activityID uuid.UUID) ([]db_models.Participant, error) {
	holiday := p.db.Model(&db_models.Activity{}).Select("holiday_id").Where("id = ?", activityID)
	joined := p.db.Model(&db_models.Participate{}).Select("participant_id").Where("activity_id = ?", activityID)

	var participants []db_models.Participant
	err := p.db.WithContext(ctx).
		Joins("JOIN invitations ON invitations.participant_id = participants.id").
		Where("invitations.holiday_id IN (?) AND invitations.is_accepted = ?", holiday, true).
		Where("participants.id NOT IN (?)", joined).
		Order("participants.first_name ASC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (p *participantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).Model(&db_models.Participant{}).Count(&count).Error
	return count, err
}
