package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetUsersByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.User, error)

	ListBarbers(
		ctx context.Context,
	) ([]models.User, error)

	// -------- Service catalog --------
	GetServiceByPublicID(
		ctx context.Context,
		publicID string,
	) (*models.Service, error)

	// -------- Schedule --------
	GetScheduleByDate(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) (*models.BarberSchedule, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Agendamentos não cancelados do barbeiro no dia [dayStart, dayEnd),
	// com o serviço pré-carregado para a cadeia de fallback de duração.
	// excludeID > 0 remove o próprio registro (fluxos de atualização).
	ListDayAppointmentsForBarber(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
		excludeID uint,
	) ([]models.Appointment, error)

	ListDayAppointmentsForCustomer(
		ctx context.Context,
		customerID uint,
		dayStart time.Time,
		dayEnd time.Time,
		excludeID uint,
	) ([]models.Appointment, error)

	CountCustomerAppointmentsOnDay(
		ctx context.Context,
		customerID uint,
		day time.Time,
		excludeID uint,
	) (int64, error)

	// -------- Appointment (read / state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	ListAppointmentsByCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForBarber(
		ctx context.Context,
		barberID uint,
		filter BarberListFilter,
	) ([]models.Appointment, error)

	// -------- Unit of work --------
	// InTx executa fn contra um repositório ligado a uma única transação;
	// commit no retorno nil, rollback em erro. É o que fecha a janela de
	// corrida entre "checar" e "reservar".
	InTx(
		ctx context.Context,
		fn func(ctx context.Context, tx Repository) error,
	) error
}
