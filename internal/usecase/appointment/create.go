package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// ======================================================
// OUTPUT
// ======================================================

type CreateResult struct {
	models.Appointment
	Barber domain.BarberInfo `json:"barber"`
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment é o orquestrador transacional: validação, checagem de
// conflito e persistência acontecem dentro de UMA transação, fechando a
// janela de corrida entre "slot livre" e "reservar".
type CreateAppointment struct {
	repo  domain.Repository
	rules domain.Rules
	audit *audit.Dispatcher
	cache SlotCache
	log   zerolog.Logger
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	rules domain.Rules,
	auditDispatcher *audit.Dispatcher,
	cache SlotCache,
	log zerolog.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		rules: rules,
		audit: auditDispatcher,
		cache: cache,
		log:   log,
		now:   timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in domain.CreateInput,
) (*CreateResult, error) {

	// --------------------------------------------------
	// 1. Barbeiro precisa existir e ter papel de barbeiro
	// --------------------------------------------------
	barber, err := uc.repo.GetUserByID(ctx, in.BarberID)
	if err != nil {
		return nil, uc.storageErr("load barber", err)
	}
	if barber == nil {
		return nil, httperr.NotFoundErr("barber_not_found", "Barbeiro não encontrado.")
	}
	if !barber.IsBarber() {
		return nil, httperr.ValidationErr("not_a_barber", "O usuário selecionado não é um barbeiro.")
	}

	requested := in.AppointmentDate.In(timezone.Reference)
	var created models.Appointment

	// --------------------------------------------------
	// 2-5. Tudo dentro de uma única transação
	// --------------------------------------------------
	err = uc.repo.InTx(ctx, func(ctx context.Context, tx domain.Repository) error {

		// serviço: existe, ativo, preço confere
		snapshot, err := uc.resolveService(ctx, tx, in.ServicePublicID, in.ExpectedPrice)
		if err != nil {
			return err
		}

		now := uc.now()

		// regras de negócio: janela de antecedência + limite diário
		if err := uc.rules.ValidateAdvanceBooking(requested, now); err != nil {
			return err
		}

		count, err := tx.CountCustomerAppointmentsOnDay(ctx, in.CustomerID, requested, 0)
		if err != nil {
			return uc.storageErr("count daily appointments", err)
		}
		if err := uc.rules.ValidateDailyCap(count); err != nil {
			return err
		}

		// conflito do próprio cliente (entre barbeiros diferentes)
		duration := uc.rules.SlotWidthMin
		if snapshot.durationMin != nil {
			duration = *snapshot.durationMin
		}

		dayStart, dayEnd := timezone.DayRange(requested)

		own, err := tx.ListDayAppointmentsForCustomer(ctx, in.CustomerID, dayStart, dayEnd, 0)
		if err != nil {
			return uc.storageErr("list customer appointments", err)
		}
		if uc.rules.FindOverlap(requested, duration, own) != nil {
			return httperr.ConflictErr(
				"customer_time_conflict",
				"Você já tem um agendamento que conflita com esse horário.",
			)
		}

		// conflito do barbeiro, rechecado DENTRO da transação
		if err := uc.assertBarberSlotFree(ctx, tx, in.BarberID, requested, duration); err != nil {
			return err
		}

		ap := models.Appointment{
			CustomerID:      in.CustomerID,
			BarberID:        in.BarberID,
			AppointmentDate: requested,
			ServiceID:       snapshot.serviceID,
			ServiceType:     snapshot.serviceType,
			Price:           snapshot.price,
			DurationMin:     snapshot.durationMin,
			Notes:           in.Notes,
		}

		if err := tx.CreateAppointment(ctx, &ap); err != nil {
			// duas transações disputando o mesmo slot: a perdedora vira
			// conflito de reserva, nunca erro interno
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ConflictErr("time_conflict", "Esse horário acabou de ser reservado.")
			}
			return uc.storageErr("create appointment", err)
		}

		created = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, in.BarberID, timezone.FormatDate(requested))
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CustomerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return &CreateResult{
		Appointment: created,
		Barber:      domain.BarberInfo{ID: barber.ID, Name: barber.Name},
	}, nil
}

// ======================================================
// HELPERS
// ======================================================

type serviceSnapshot struct {
	serviceID   *uint
	serviceType *string
	price       *float64
	durationMin *int
}

// resolveService valida o serviço pedido e captura o snapshot de
// nome/preço/duração que vai gravado no agendamento.
func (uc *CreateAppointment) resolveService(
	ctx context.Context,
	tx domain.Repository,
	publicID string,
	expectedPrice *float64,
) (serviceSnapshot, error) {

	if publicID == "" {
		return serviceSnapshot{}, nil
	}

	svc, err := tx.GetServiceByPublicID(ctx, publicID)
	if err != nil {
		return serviceSnapshot{}, uc.storageErr("load service", err)
	}
	if svc == nil {
		return serviceSnapshot{}, httperr.NotFoundErr("service_not_found", "Serviço não encontrado.")
	}
	if !svc.IsActive() {
		return serviceSnapshot{}, httperr.ValidationErr("service_inactive", "Serviço indisponível no momento.")
	}

	if expectedPrice != nil && *expectedPrice != svc.Price {
		return serviceSnapshot{}, httperr.ConflictErr(
			"price_mismatch",
			"O preço informado não corresponde ao preço atual do serviço.",
		)
	}

	price := svc.Price
	name := svc.Name
	duration := svc.DurationMin

	return serviceSnapshot{
		serviceID:   &svc.ID,
		serviceType: &name,
		price:       &price,
		durationMin: &duration,
	}, nil
}

// assertBarberSlotFree é a checagem de conflito por barbeiro. Início fora
// do limite de slot é conflito automático nessa camada.
func (uc *CreateAppointment) assertBarberSlotFree(
	ctx context.Context,
	tx domain.Repository,
	barberID uint,
	start time.Time,
	durationMin int,
) error {

	if !uc.rules.IsValidSlotBoundary(start) {
		return httperr.ConflictErr("time_conflict", "Horário fora da grade de slots.")
	}

	occupied := uc.rules.SlotsNeeded(durationMin) * uc.rules.SlotWidthMin
	dayStart, dayEnd := timezone.DayRange(start)

	existing, err := tx.ListDayAppointmentsForBarber(ctx, barberID, dayStart, dayEnd, 0)
	if err != nil {
		return uc.storageErr("list barber appointments", err)
	}

	if uc.rules.FindOverlap(start, occupied, existing) != nil {
		return httperr.ConflictErr(
			"time_conflict",
			"Esse horário já está reservado para esse barbeiro. Escolha outro horário ou barbeiro.",
		)
	}

	return nil
}

// storageErr loga a falha inesperada de armazenamento e devolve um erro
// genérico, sem vazar detalhes internos para o chamador.
func (uc *CreateAppointment) storageErr(op string, err error) error {
	uc.log.Error().Err(err).Str("op", op).Msg("appointment storage failure")
	return err
}
