package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "holiday-api/internal/models/db_models"
)

type StatisticsRepository interface {
	CountParticipants(ctx context.Context) (int64, error)

	// CountByCountryOn counts accepted memberships of holidays running on
	// the given day, grouped by the holiday's country.
	CountByCountryOn(ctx context.Context, day time.Time) ([]CountryCountRow, error)
}

type CountryCountRow struct {
	Country string `gorm:"column:country"`
	Count   int64  `gorm:"column:count"`
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) CountParticipants(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Participant{}).Count(&n).Error
	return n, err
}

func (r *statisticsRepository) CountByCountryOn(ctx context.Context, day time.Time) ([]CountryCountRow, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var rows []CountryCountRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Invitation{}).
		Select("locations.country AS country, COUNT(invitations.id) AS count").
		Joins("JOIN holidays ON holidays.id = invitations.holiday_id").
		Joins("JOIN locations ON locations.id = holidays.location_id").
		Where("invitations.is_accepted = ?", true).
		Where("holidays.start_date < ? AND holidays.end_date >= ?", end, start).
		Group("locations.country").
		Order("locations.country ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
