package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/schedule"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

var _ schedule.Repository = (*ScheduleGormRepository)(nil)

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) GetByDate(
	ctx context.Context,
	barberID uint,
	date time.Time,
) (*models.BarberSchedule, error) {

	var sched models.BarberSchedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, timezone.DayStart(date)).
		First(&sched).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sched, nil
}

func (r *ScheduleGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.BarberSchedule, error) {

	var sched models.BarberSchedule
	if err := r.db.WithContext(ctx).First(&sched, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sched, nil
}

func (r *ScheduleGormRepository) ListRange(
	ctx context.Context,
	barberID uint,
	start *time.Time,
	end *time.Time,
) ([]models.BarberSchedule, error) {

	q := r.db.WithContext(ctx).Where("barber_id = ?", barberID)

	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date <= ?", *end)
	}

	var scheds []models.BarberSchedule
	if err := q.Order("date ASC").Find(&scheds).Error; err != nil {
		return nil, err
	}
	return scheds, nil
}

func (r *ScheduleGormRepository) Create(
	ctx context.Context,
	s *models.BarberSchedule,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScheduleGormRepository) Update(
	ctx context.Context,
	s *models.BarberSchedule,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ScheduleGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.BarberSchedule{}, id).Error
}
