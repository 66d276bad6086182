package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// SetAppointmentStatus é a mudança de status iniciada pelo barbeiro.
// O único status aceito é "cancelled".
type SetAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	cache SlotCache,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		audit: auditDispatcher,
		cache: cache,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
	status string,
) (*models.Appointment, error) {

	if status != models.AppointmentStatusCancelled {
		return nil, httperr.ValidationErr(
			"invalid_status",
			"Status inválido. Só é possível cancelar agendamentos.",
		)
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.NotFoundErr("appointment_not_found", "Agendamento não encontrado.")
	}

	if ap.BarberID != barberID {
		return nil, httperr.ForbiddenErr("not_owner", "Você só pode alterar os seus próprios agendamentos.")
	}

	ap.Status = models.AppointmentStatusCancelled
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, ap.BarberID, timezone.FormatDate(ap.AppointmentDate))
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
