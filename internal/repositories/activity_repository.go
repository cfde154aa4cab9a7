package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"holiday-api/internal/models/db_models"
)

type ActivityRepository interface {
	WithTx(tx *gorm.DB) ActivityRepository

	Insert(ctx context.Context, activity *db_models.Activity) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Activity, error)
	FindByHoliday(ctx context.Context, holidayID uuid.UUID) ([]db_models.Activity, error)
	Update(ctx context.Context, activity *db_models.Activity) error

	// Delete clears the activity's participations, then the activity and
	// its location. Nothing is removed if any step fails.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// DeleteByHoliday does the same for every activity of the holiday.
	DeleteByHoliday(ctx context.Context, holidayID uuid.UUID) error
}

type activityRepository struct {
	db           *gorm.DB
	participates ParticipateRepository
}

func NewActivityRepository(db *gorm.DB, participates ParticipateRepository) ActivityRepository {
	return &activityRepository{db: db, participates: participates}
}

func (r *activityRepository) WithTx(tx *gorm.DB) ActivityRepository {
	return &activityRepository{db: tx, participates: r.participates.WithTx(tx)}
}

func (r *activityRepository) Insert(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).
		Preload("Location").
		First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) FindByHoliday(ctx context.Context, holidayID uuid.UUID) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).
		Preload("Location").
		Where("holiday_id = ?", holidayID).
		Order("start_date ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		activity.Location.ID = activity.LocationID
		if err := tx.Model(&activity.Location).
			Select("street", "number", "locality", "postal_code", "country").
			Updates(&activity.Location).Error; err != nil {
			return err
		}

		return tx.Model(activity).
			Select("name", "description", "activity_path", "price", "start_date", "end_date").
			Updates(activity).Error
	})
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activity db_models.Activity
		if err := tx.Select("id", "location_id").First(&activity, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := r.participates.WithTx(tx).DeleteByActivity(ctx, id); err != nil {
			return err
		}

		res := tx.Delete(&db_models.Activity{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected

		return tx.Delete(&db_models.Location{}, "id = ?", activity.LocationID).Error
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *activityRepository) DeleteByHoliday(ctx context.Context, holidayID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activities []db_models.Activity
		if err := tx.Select("id", "location_id").
			Where("holiday_id = ?", holidayID).
			Find(&activities).Error; err != nil {
			return err
		}
		if len(activities) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(activities))
		locationIDs := make([]uuid.UUID, 0, len(activities))
		for _, a := range activities {
			ids = append(ids, a.ID)
			locationIDs = append(locationIDs, a.LocationID)
		}

		participates := r.participates.WithTx(tx)
		for _, id := range ids {
			if err := participates.DeleteByActivity(ctx, id); err != nil {
				return err
			}
		}

		if err := tx.Where("id IN ?", ids).Delete(&db_models.Activity{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", locationIDs).Delete(&db_models.Location{}).Error
	})
}
