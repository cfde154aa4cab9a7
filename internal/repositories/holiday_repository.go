package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"holiday-api/internal/models/db_models"
)

type HolidayRepository interface {
	WithTx(tx *gorm.DB) HolidayRepository

	// Insert writes the holiday and its location.
	Insert(ctx context.Context, holiday *db_models.Holiday) error

	// FindById loads the location and the activities with their locations.
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Holiday, error)

	// FindByParticipant returns holidays the participant accepted.
	FindByParticipant(ctx context.Context, participantID uuid.UUID) ([]db_models.Holiday, error)
	FindPublished(ctx context.Context) ([]db_models.Holiday, error)

	Update(ctx context.Context, holiday *db_models.Holiday) error

	// Delete removes the holiday row and then its location. Dependents must
	// already be gone.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type holidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) WithTx(tx *gorm.DB) HolidayRepository {
	return &holidayRepository{db: tx}
}

func (r *holidayRepository) Insert(ctx context.Context, holiday *db_models.Holiday) error {
	return r.db.WithContext(ctx).Omit("Creator", "Activities").Create(holiday).Error
}

func (r *holidayRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Holiday, error) {
	var holiday db_models.Holiday
	err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("activities.start_date ASC")
		}).
		Preload("Activities.Location").
		First(&holiday, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &holiday, nil
}

func (r *holidayRepository) FindByParticipant(ctx context.Context, participantID uuid.UUID) ([]db_models.Holiday, error) {
	var holidays []db_models.Holiday
	err := r.db.WithContext(ctx).
		Preload("Location").
		Joins("JOIN invitations ON invitations.holiday_id = holidays.id").
		Where("invitations.participant_id = ? AND invitations.is_accepted = ?", participantID, true).
		Order("holidays.start_date ASC").
		Find(&holidays).Error
	if err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *holidayRepository) FindPublished(ctx context.Context) ([]db_models.Holiday, error) {
	var holidays []db_models.Holiday
	err := r.db.WithContext(ctx).
		Preload("Location").
		Where("is_publish = ?", true).
		Order("start_date ASC").
		Find(&holidays).Error
	if err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *holidayRepository) Update(ctx context.Context, holiday *db_models.Holiday) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		holiday.Location.ID = holiday.LocationID
		if err := tx.Model(&holiday.Location).
			Select("street", "number", "locality", "postal_code", "country").
			Updates(&holiday.Location).Error; err != nil {
			return err
		}

		return tx.Model(holiday).
			Select("name", "description", "holiday_path", "start_date", "end_date", "is_publish").
			Updates(holiday).Error
	})
}

func (r *holidayRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var holiday db_models.Holiday
		if err := tx.Select("id", "location_id").First(&holiday, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		res := tx.Delete(&db_models.Holiday{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected

		return tx.Delete(&db_models.Location{}, "id = ?", holiday.LocationID).Error
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
