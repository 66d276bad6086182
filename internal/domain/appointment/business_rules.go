package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// ValidateAdvanceBooking aplica a janela de antecedência:
//   - o início precisa cair em um limite de slot;
//   - reserva no mesmo dia exige antecedência mínima;
//   - nada no passado;
//   - nada além da janela máxima de meses no futuro.
func (r Rules) ValidateAdvanceBooking(requested, now time.Time) error {
	if !r.IsValidSlotBoundary(requested) {
		return httperr.ValidationErr(
			"invalid_slot_time",
			fmt.Sprintf("Agendamentos devem começar em múltiplos de %d minutos.", r.SlotWidthMin),
		)
	}

	if timezone.SameDay(requested, now) {
		minBookingTime := now.Add(time.Duration(r.SameDayNoticeMin) * time.Minute)
		if requested.Before(minBookingTime) {
			return httperr.ValidationErr(
				"too_soon",
				fmt.Sprintf("Agendamentos para hoje exigem pelo menos %d minutos de antecedência.", r.SameDayNoticeMin),
			)
		}
	}

	if requested.Before(now) {
		return httperr.ValidationErr("past_date", "Não é possível agendar no passado.")
	}

	maxBookingDate := now.AddDate(0, r.MaxAdvanceMonths, 0)
	if requested.After(maxBookingDate) {
		return httperr.ValidationErr(
			"too_far_ahead",
			fmt.Sprintf("Agendamentos só podem ser feitos com até %d meses de antecedência.", r.MaxAdvanceMonths),
		)
	}

	return nil
}

// ValidateCancellation verifica o prazo-limite: cancelamento precisa
// acontecer antes de (horário do agendamento - prazo em horas).
func (r Rules) ValidateCancellation(appointmentDate, now time.Time) error {
	deadline := appointmentDate.Add(-time.Duration(r.CancelDeadlineHours) * time.Hour)
	if now.After(deadline) {
		return httperr.ValidationErr(
			"cancellation_deadline",
			fmt.Sprintf("Cancelamentos exigem pelo menos %d hora(s) de antecedência.", r.CancelDeadlineHours),
		)
	}
	return nil
}

// ValidateDailyCap rejeita quando o cliente já atingiu o limite diário de
// agendamentos não cancelados. A contagem vem do repositório, comparando o
// dia-calendário em UTC.
func (r Rules) ValidateDailyCap(count int64) error {
	if count >= int64(r.MaxPerDay) {
		return httperr.ValidationErr(
			"daily_limit_reached",
			fmt.Sprintf("Você só pode ter %d agendamento(s) por dia.", r.MaxPerDay),
		)
	}
	return nil
}
