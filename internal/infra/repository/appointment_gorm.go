package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *AppointmentGormRepository) GetUsersByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.User, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *AppointmentGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.User, error) {

	var barbers []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleBarber).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetServiceByPublicID(
	ctx context.Context,
	publicID string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *AppointmentGormRepository) GetScheduleByDate(
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

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) ListDayAppointmentsForBarber(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
	excludeID uint,
) ([]models.Appointment, error) {

	// FOR UPDATE: dentro de transação, trava os registros do dia e impede
	// que duas criações concorrentes enxerguem a mesma vaga livre.
	q := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Service").
		Where(
			"barber_id = ? AND (status IS NULL OR status = '') AND appointment_date >= ? AND appointment_date < ?",
			barberID, dayStart, dayEnd,
		)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var apps []models.Appointment
	if err := q.Order("appointment_date ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListDayAppointmentsForCustomer(
	ctx context.Context,
	customerID uint,
	dayStart time.Time,
	dayEnd time.Time,
	excludeID uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"customer_id = ? AND (status IS NULL OR status = '') AND appointment_date >= ? AND appointment_date < ?",
			customerID, dayStart, dayEnd,
		)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var apps []models.Appointment
	if err := q.Order("appointment_date ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) CountCustomerAppointmentsOnDay(
	ctx context.Context,
	customerID uint,
	day time.Time,
	excludeID uint,
) (int64, error) {

	dayStart, dayEnd := timezone.DayRange(day)

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"customer_id = ? AND (status IS NULL OR status = '') AND appointment_date >= ? AND appointment_date < ?",
			customerID, dayStart, dayEnd,
		)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Appointment (read / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

func (r *AppointmentGormRepository) ListAppointmentsByCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("customer_id = ?", customerID).
		Order("appointment_date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForBarber(
	ctx context.Context,
	barberID uint,
	filter domain.BarberListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer").
		Where("barber_id = ?", barberID)

	switch filter.Status {
	case "active":
		q = q.Where("status IS NULL OR status = ''")
	case "cancelled":
		q = q.Where("status = ?", models.AppointmentStatusCancelled)
	}

	if filter.Date != nil {
		dayStart, dayEnd := timezone.DayRange(*filter.Date)
		q = q.Where("appointment_date >= ? AND appointment_date < ?", dayStart, dayEnd)
	}

	var apps []models.Appointment
	if err := q.Order("appointment_date ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Unit of work
// --------------------------------------------------

func (r *AppointmentGormRepository) InTx(
	ctx context.Context,
	fn func(ctx context.Context, tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &AppointmentGormRepository{db: tx})
	})
}
