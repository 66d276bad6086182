package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// SlotCache é o contrato do cache de disponibilidade. Leituras podem ser
// levemente desatualizadas sem comprometer a correção: a transação na hora
// da escrita é quem garante que não há double-booking.
type SlotCache interface {
	Get(ctx context.Context, barberID uint, date, serviceID string) ([]string, bool)
	Set(ctx context.Context, barberID uint, date, serviceID string, slots []string)
	InvalidateDay(ctx context.Context, barberID uint, date string)
}

type GetAvailability struct {
	repo  domain.Repository
	rules domain.Rules
	cache SlotCache
	now   func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	rules domain.Rules,
	cache SlotCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		rules: rules,
		cache: cache,
		now:   timezone.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	if uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, in.BarberID, in.DateStr, in.ServicePublicID); ok {
			return slots, nil
		}
	}

	// 1. Duração do serviço pedido (fallback: um slot quando não há
	// serviço ou o serviço está inativo)
	requestedDuration := uc.rules.SlotWidthMin
	if in.ServicePublicID != "" {
		svc, err := uc.repo.GetServiceByPublicID(ctx, in.ServicePublicID)
		if err == nil && svc != nil && svc.IsActive() {
			requestedDuration = svc.DurationMin
		}
	}
	slotsNeeded := uc.rules.SlotsNeeded(requestedDuration)

	// 2. Janela de expediente do barbeiro na data
	schedule, err := uc.repo.GetScheduleByDate(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	if schedule == nil || !schedule.Active {
		// sem expediente declarado, nada é reservável nesse dia
		return []string{}, nil
	}

	// 3. Sequência completa de slots candidatos
	allSlots, err := uc.rules.GenerateSlots(schedule.StartTime, schedule.EndTime)
	if err != nil {
		return nil, err
	}

	candidate := make(map[string]bool, len(allSlots))
	for _, s := range allSlots {
		candidate[s] = true
	}

	// 4. Sobreposição dos agendamentos existentes
	dayStart, dayEnd := timezone.DayRange(in.Date)
	existing, err := uc.repo.ListDayAppointmentsForBarber(ctx, in.BarberID, dayStart, dayEnd, 0)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool)
	for i := range existing {
		ap := &existing[i]

		if !timezone.SameDay(ap.AppointmentDate, in.Date) {
			continue
		}

		apSlots := uc.rules.SlotsNeeded(uc.rules.EffectiveDuration(ap))
		for j := 0; j < apSlots; j++ {
			slotTime := ap.AppointmentDate.Add(
				time.Duration(j*uc.rules.SlotWidthMin) * time.Minute,
			)
			if !uc.rules.IsValidSlotBoundary(slotTime) {
				continue
			}
			booked[slotTime.In(timezone.Reference).Format("15:04")] = true
		}
	}

	// 5. Filtro final: reservados, consecutividade e antecedência de hoje
	now := uc.now()
	isToday := timezone.SameDay(in.Date, now)
	minBookingTime := now.Add(time.Duration(uc.rules.SameDayNoticeMin) * time.Minute)

	available := []string{}
	for _, slot := range allSlots {
		if booked[slot] {
			continue
		}

		if slotsNeeded > 1 && !consecutiveSlotsFree(uc.rules, slot, slotsNeeded, candidate, booked) {
			continue
		}

		if isToday {
			slotTime, err := slotOnDate(in.Date, slot)
			if err != nil {
				continue
			}
			if !slotTime.After(minBookingTime) {
				continue
			}
		}

		available = append(available, slot)
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, in.BarberID, in.DateStr, in.ServicePublicID, available)
	}

	return available, nil
}

// consecutiveSlotsFree confere se TODOS os N slots consecutivos existem na
// grade e estão livres, sem alocação fragmentada.
func consecutiveSlotsFree(
	rules domain.Rules,
	slot string,
	slotsNeeded int,
	candidate map[string]bool,
	booked map[string]bool,
) bool {

	startMin, err := domain.TimeToMinutes(slot)
	if err != nil {
		return false
	}

	for i := 0; i < slotsNeeded; i++ {
		s := domain.MinutesToTime(startMin + i*rules.SlotWidthMin)
		if !candidate[s] || booked[s] {
			return false
		}
	}

	return true
}

// slotOnDate materializa um slot HH:MM no instante correspondente do dia.
func slotOnDate(date time.Time, slot string) (time.Time, error) {
	minutes, err := domain.TimeToMinutes(slot)
	if err != nil {
		return time.Time{}, err
	}
	return timezone.DayStart(date).Add(time.Duration(minutes) * time.Minute), nil
}
