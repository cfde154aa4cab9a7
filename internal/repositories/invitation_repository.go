package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"holiday-api/internal/models/db_models"
)

type InvitationRepository interface {
	WithTx(tx *gorm.DB) InvitationRepository

	Insert(ctx context.Context, invitation *db_models.Invitation) error
	InsertMany(ctx context.Context, invitations []*db_models.Invitation) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Invitation, error)
	FindByHolidayAndParticipant(ctx context.Context, holidayID, participantID uuid.UUID) (*db_models.Invitation, error)

	// FindPendingByParticipant returns invitations not yet accepted, with
	// the holiday (and its location) and the participant loaded.
	FindPendingByParticipant(ctx context.Context, participantID uuid.UUID) ([]db_models.Invitation, error)

	MarkAccepted(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteById(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteByHoliday(ctx context.Context, holidayID uuid.UUID) error
	DeleteByHolidayAndParticipant(ctx context.Context, holidayID, participantID uuid.UUID) (int64, error)

	HasAcceptedParticipants(ctx context.Context, holidayID uuid.UUID) (bool, error)
	IsAcceptedMember(ctx context.Context, holidayID, participantID uuid.UUID) (bool, error)
}

type invitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) WithTx(tx *gorm.DB) InvitationRepository {
	return &invitationRepository{db: tx}
}

func (r *invitationRepository) Insert(ctx context.Context, invitation *db_models.Invitation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(invitation).Error
}

func (r *invitationRepository) InsertMany(ctx context.Context, invitations []*db_models.Invitation) error {
	if len(invitations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&invitations).Error
}

func (r *invitationRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Invitation, error) {
	var invitation db_models.Invitation
	err := r.db.WithContext(ctx).First(&invitation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *invitationRepository) FindByHolidayAndParticipant(ctx context.Context, holidayID, participantID uuid.UUID) (*db_models.Invitation, error) {
	var invitation db_models.Invitation
	err := r.db.WithContext(ctx).
		Where("holiday_id = ? AND participant_id = ?", holidayID, participantID).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *invitationRepository) FindPendingByParticipant(ctx context.Context, participantID uuid.UUID) ([]db_models.Invitation, error) {
	var invitations []db_models.Invitation
	err := r.db.WithContext(ctx).
		Preload("Holiday.Location").
		Preload("Participant").
		Where("participant_id = ? AND is_accepted = ?", participantID, false).
		Order("created_at ASC").
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

func (r *invitationRepository) MarkAccepted(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Invitation{}).
		Where("id = ?", id).
		Update("is_accepted", true)
	return res.RowsAffected, res.Error
}

func (r *invitationRepository) DeleteById(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.Invitation{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *invitationRepository) DeleteByHoliday(ctx context.Context, holidayID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("holiday_id = ?", holidayID).
		Delete(&db_models.Invitation{}).Error
}

func (r *invitationRepository) DeleteByHolidayAndParticipant(ctx context.Context, holidayID, participantID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("holiday_id = ? AND participant_id = ?", holidayID, participantID).
		Delete(&db_models.Invitation{})
	return res.RowsAffected, res.Error
}

func (r *invitationRepository) HasAcceptedParticipants(ctx context.Context, holidayID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Invitation{}).
		Where("holiday_id = ? AND is_accepted = ?", holidayID, true).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

func (r *invitationRepository) IsAcceptedMember(ctx context.Context, holidayID, participantID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Invitation{}).
		Where("holiday_id = ? AND participant_id = ? AND is_accepted = ?", holidayID, participantID, true).
		Count(&count).Error
	return count > 0, err
}
