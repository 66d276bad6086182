package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// CancelAppointment é o cancelamento iniciado pelo cliente: verificação de
// posse, prazo-limite e remoção do registro, como uma unidade só.
type CancelAppointment struct {
	repo  domain.Repository
	rules domain.Rules
	audit *audit.Dispatcher
	cache SlotCache
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	rules domain.Rules,
	auditDispatcher *audit.Dispatcher,
	cache SlotCache,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		rules: rules,
		audit: auditDispatcher,
		cache: cache,
		now:   timezone.Now,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	customerID uint,
) error {

	var barberID uint
	var day string

	err := uc.repo.InTx(ctx, func(ctx context.Context, tx domain.Repository) error {

		ap, err := tx.GetAppointmentByID(ctx, appointmentID)
		if err != nil {
			return err
		}
		if ap == nil {
			return httperr.NotFoundErr("appointment_not_found", "Agendamento não encontrado.")
		}

		if ap.CustomerID != customerID {
			return httperr.ForbiddenErr("not_owner", "Esse agendamento não pertence a você.")
		}

		if err := uc.rules.ValidateCancellation(ap.AppointmentDate, uc.now()); err != nil {
			return err
		}

		barberID = ap.BarberID
		day = timezone.FormatDate(ap.AppointmentDate)

		return tx.DeleteAppointment(ctx, ap.ID)
	})
	if err != nil {
		return err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, barberID, day)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &customerID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
