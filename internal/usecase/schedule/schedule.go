package schedule

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// Repository é o contrato de armazenamento das janelas de expediente.
type Repository interface {
	GetByDate(ctx context.Context, barberID uint, date time.Time) (*models.BarberSchedule, error)
	GetByID(ctx context.Context, id uint) (*models.BarberSchedule, error)
	ListRange(ctx context.Context, barberID uint, start, end *time.Time) ([]models.BarberSchedule, error)
	Create(ctx context.Context, s *models.BarberSchedule) error
	Update(ctx context.Context, s *models.BarberSchedule) error
	Delete(ctx context.Context, id uint) error
}

// SlotCacheInvalidator limpa o cache de disponibilidade do dia afetado.
type SlotCacheInvalidator interface {
	InvalidateDay(ctx context.Context, barberID uint, date string)
}

// ======================================================
// INPUTS
// ======================================================

type CreateInput struct {
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM
	Active    *bool
}

type UpdateInput struct {
	StartTime *string
	EndTime   *string
	Active    *bool
}

// ======================================================
// USE CASE
// ======================================================

type Service struct {
	repo  Repository
	audit *audit.Dispatcher
	cache SlotCacheInvalidator
	now   func() time.Time
}

func NewService(
	repo Repository,
	auditDispatcher *audit.Dispatcher,
	cache SlotCacheInvalidator,
) *Service {
	return &Service{
		repo:  repo,
		audit: auditDispatcher,
		cache: cache,
		now:   timezone.Now,
	}
}

// GetByDate devolve a janela do barbeiro na data, ou nil quando não há.
func (s *Service) GetByDate(
	ctx context.Context,
	barberID uint,
	dateStr string,
) (*models.BarberSchedule, error) {

	if !domain.IsValidDateString(dateStr) {
		return nil, httperr.Format("invalid_date", "Data inválida. Esperado YYYY-MM-DD.")
	}

	date, _ := timezone.ParseDate(dateStr)
	return s.repo.GetByDate(ctx, barberID, date)
}

// ListRange devolve as janelas do barbeiro no intervalo [início, fim do
// dia final]. Limites são opcionais.
func (s *Service) ListRange(
	ctx context.Context,
	barberID uint,
	startStr string,
	endStr string,
) ([]models.BarberSchedule, error) {

	var start, end *time.Time

	if startStr != "" {
		if !domain.IsValidDateString(startStr) {
			return nil, httperr.Format("invalid_start_date", "Data inicial inválida. Esperado YYYY-MM-DD.")
		}
		d, _ := timezone.ParseDate(startStr)
		start = &d
	}

	if endStr != "" {
		if !domain.IsValidDateString(endStr) {
			return nil, httperr.Format("invalid_end_date", "Data final inválida. Esperado YYYY-MM-DD.")
		}
		d, _ := timezone.ParseDate(endStr)
		// inclusivo: até o fim do último dia
		d = d.Add(24*time.Hour - time.Second)
		end = &d
	}

	return s.repo.ListRange(ctx, barberID, start, end)
}

func (s *Service) Create(
	ctx context.Context,
	barberID uint,
	in CreateInput,
) (*models.BarberSchedule, error) {

	if !domain.IsValidDateString(in.Date) {
		return nil, httperr.Format("invalid_date", "Data inválida. Esperado YYYY-MM-DD.")
	}

	if err := s.validateWindow(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	date, _ := timezone.ParseDate(in.Date)

	if err := s.validateNotPastToday(in.StartTime, date); err != nil {
		return nil, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	sched := models.BarberSchedule{
		BarberID:  barberID,
		Date:      date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Active:    active,
	}

	if err := s.repo.Create(ctx, &sched); err != nil {
		// índice único (barbeiro, data): conflito tipado, não erro genérico
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, httperr.ConflictErr(
				"schedule_exists",
				"Já existe uma agenda cadastrada para essa data.",
			)
		}
		return nil, err
	}

	s.invalidate(ctx, barberID, in.Date)
	s.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "schedule_created",
		Entity:   "schedule",
		EntityID: &sched.ID,
	})

	return &sched, nil
}

func (s *Service) Update(
	ctx context.Context,
	scheduleID uint,
	barberID uint,
	in UpdateInput,
) (*models.BarberSchedule, error) {

	sched, err := s.loadOwned(ctx, scheduleID, barberID)
	if err != nil {
		return nil, err
	}

	startTime := sched.StartTime
	if in.StartTime != nil {
		startTime = *in.StartTime
	}
	endTime := sched.EndTime
	if in.EndTime != nil {
		endTime = *in.EndTime
	}

	if err := s.validateWindow(startTime, endTime); err != nil {
		return nil, err
	}

	// hora no passado só é um problema quando o início está sendo alterado
	if in.StartTime != nil {
		if err := s.validateNotPastToday(startTime, sched.Date); err != nil {
			return nil, err
		}
	}

	sched.StartTime = startTime
	sched.EndTime = endTime
	if in.Active != nil {
		sched.Active = *in.Active
	}

	if err := s.repo.Update(ctx, sched); err != nil {
		return nil, err
	}

	s.invalidate(ctx, barberID, timezone.FormatDate(sched.Date))
	s.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "schedule_updated",
		Entity:   "schedule",
		EntityID: &sched.ID,
	})

	return sched, nil
}

func (s *Service) Delete(
	ctx context.Context,
	scheduleID uint,
	barberID uint,
) error {

	sched, err := s.loadOwned(ctx, scheduleID, barberID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, sched.ID); err != nil {
		return err
	}

	s.invalidate(ctx, barberID, timezone.FormatDate(sched.Date))
	s.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "schedule_deleted",
		Entity:   "schedule",
		EntityID: &sched.ID,
	})

	return nil
}

// ======================================================
// HELPERS
// ======================================================

func (s *Service) loadOwned(
	ctx context.Context,
	scheduleID uint,
	barberID uint,
) (*models.BarberSchedule, error) {

	sched, err := s.repo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, httperr.NotFoundErr("schedule_not_found", "Agenda não encontrada.")
	}
	if sched.BarberID != barberID {
		return nil, httperr.ForbiddenErr("not_owner", "Essa agenda não pertence a você.")
	}

	return sched, nil
}

func (s *Service) validateWindow(startTime, endTime string) error {
	startMin, err := domain.TimeToMinutes(startTime)
	if err != nil {
		return httperr.Format("invalid_start_time", "Horário inicial inválido. Esperado HH:MM.")
	}
	endMin, err := domain.TimeToMinutes(endTime)
	if err != nil {
		return httperr.Format("invalid_end_time", "Horário final inválido. Esperado HH:MM.")
	}

	if endMin <= startMin {
		return httperr.ValidationErr("invalid_time_range", "O horário final deve ser depois do inicial.")
	}

	return nil
}

// validateNotPastToday impede janela começando antes do horário atual
// quando a data é hoje.
func (s *Service) validateNotPastToday(startTime string, date time.Time) error {
	now := s.now()
	if !timezone.SameDay(date, now) {
		return nil
	}

	startMin, err := domain.TimeToMinutes(startTime)
	if err != nil {
		return err
	}

	currentMin := now.Hour()*60 + now.Minute()
	if startMin < currentMin {
		return httperr.ValidationErr("past_time", "Não é possível definir horário no passado para hoje.")
	}

	return nil
}

func (s *Service) invalidate(ctx context.Context, barberID uint, date string) {
	if s.cache != nil {
		s.cache.InvalidateDay(ctx, barberID, date)
	}
}
