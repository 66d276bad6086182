package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// fakeRepo é um repositório em memória com a mesma semântica do gorm:
// lookups pontuais devolvem (nil, nil) quando não há registro.
type fakeRepo struct {
	users        map[uint]*models.User
	services     map[string]*models.Service
	schedules    map[string]*models.BarberSchedule
	appointments []models.Appointment
	nextID       uint

	createErr error
	// executado antes do Create, para simular corrida entre transações
	beforeCreate func(r *fakeRepo)
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:     map[uint]*models.User{},
		services:  map[string]*models.Service{},
		schedules: map[string]*models.BarberSchedule{},
	}
}

func scheduleKey(barberID uint, date time.Time) string {
	return fmt.Sprintf("%d/%s", barberID, timezone.FormatDate(date))
}

func (r *fakeRepo) addUser(u models.User) *models.User {
	r.users[u.ID] = &u
	return &u
}

func (r *fakeRepo) addService(s models.Service) *models.Service {
	r.services[s.PublicID] = &s
	return &s
}

func (r *fakeRepo) addSchedule(s models.BarberSchedule) {
	r.schedules[scheduleKey(s.BarberID, s.Date)] = &s
}

func (r *fakeRepo) addAppointment(ap models.Appointment) models.Appointment {
	r.nextID++
	ap.ID = r.nextID
	r.appointments = append(r.appointments, ap)
	return ap
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func isActive(ap *models.Appointment) bool {
	return ap.Status == ""
}

// -------- domain.Repository --------

func (r *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeRepo) GetUsersByIDs(_ context.Context, ids []uint) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBarbers(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.IsBarber() {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetServiceByPublicID(_ context.Context, publicID string) (*models.Service, error) {
	return r.services[publicID], nil
}

func (r *fakeRepo) GetScheduleByDate(_ context.Context, barberID uint, date time.Time) (*models.BarberSchedule, error) {
	return r.schedules[scheduleKey(barberID, date)], nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.beforeCreate != nil {
		hook := r.beforeCreate
		r.beforeCreate = nil
		hook(r)
	}
	if r.createErr != nil {
		return r.createErr
	}

	r.nextID++
	ap.ID = r.nextID
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) ListDayAppointmentsForBarber(
	_ context.Context,
	barberID uint,
	dayStart, dayEnd time.Time,
	excludeID uint,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for i := range r.appointments {
		ap := r.appointments[i]
		if ap.BarberID != barberID || !isActive(&ap) || ap.ID == excludeID {
			continue
		}
		if ap.AppointmentDate.Before(dayStart) || !ap.AppointmentDate.Before(dayEnd) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *fakeRepo) ListDayAppointmentsForCustomer(
	_ context.Context,
	customerID uint,
	dayStart, dayEnd time.Time,
	excludeID uint,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for i := range r.appointments {
		ap := r.appointments[i]
		if ap.CustomerID != customerID || !isActive(&ap) || ap.ID == excludeID {
			continue
		}
		if ap.AppointmentDate.Before(dayStart) || !ap.AppointmentDate.Before(dayEnd) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *fakeRepo) CountCustomerAppointmentsOnDay(
	ctx context.Context,
	customerID uint,
	day time.Time,
	excludeID uint,
) (int64, error) {

	dayStart, dayEnd := timezone.DayRange(day)
	apps, _ := r.ListDayAppointmentsForCustomer(ctx, customerID, dayStart, dayEnd, excludeID)
	return int64(len(apps)), nil
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeRepo) ListAppointmentsByCustomer(_ context.Context, customerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for i := range r.appointments {
		if r.appointments[i].CustomerID == customerID {
			out = append(out, r.appointments[i])
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForBarber(
	_ context.Context,
	barberID uint,
	filter domain.BarberListFilter,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for i := range r.appointments {
		ap := r.appointments[i]
		if ap.BarberID != barberID {
			continue
		}
		switch filter.Status {
		case "active":
			if !isActive(&ap) {
				continue
			}
		case "cancelled":
			if ap.Status != models.AppointmentStatusCancelled {
				continue
			}
		}
		if filter.Date != nil && !timezone.SameDay(ap.AppointmentDate, *filter.Date) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *fakeRepo) InTx(
	ctx context.Context,
	fn func(ctx context.Context, tx domain.Repository) error,
) error {
	return fn(ctx, r)
}

var _ domain.Repository = (*fakeRepo)(nil)
