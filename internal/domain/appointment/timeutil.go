package appointment

import (
	"fmt"
	"regexp"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

var (
	timeRe = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// TimeToMinutes converte "HH:MM" em minutos desde a meia-noite.
func TimeToMinutes(clock string) (int, error) {
	if !timeRe.MatchString(clock) {
		return 0, httperr.Format("invalid_time", "Horário inválido. Esperado HH:MM.")
	}

	var h, m int
	fmt.Sscanf(clock, "%d:%d", &h, &m)
	return h*60 + m, nil
}

// MinutesToTime faz o caminho inverso, sempre com zero à esquerda.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func IsValidTimeString(clock string) bool {
	return timeRe.MatchString(clock)
}

func IsValidDateString(date string) bool {
	if !dateRe.MatchString(date) {
		return false
	}
	_, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	return err == nil
}

// SlotsNeeded devolve quantos slots inteiros uma duração ocupa
// (arredonda para cima: serviço de 30min em grade de 20 ocupa 2 slots).
func (r Rules) SlotsNeeded(durationMin int) int {
	if durationMin <= 0 {
		return 1
	}
	return (durationMin + r.SlotWidthMin - 1) / r.SlotWidthMin
}

// IsValidSlotBoundary verifica se o instante cai exatamente no início de
// um slot (minuto divisível pela largura do slot, segundo zerado).
func (r Rules) IsValidSlotBoundary(t time.Time) bool {
	if t.Second() != 0 || t.Nanosecond() != 0 {
		return false
	}
	return t.Minute()%r.SlotWidthMin == 0
}

// RangesOverlap testa sobreposição de intervalos semiabertos [início, fim).
// Intervalos encostados (endA == startB) NÃO conflitam, o que permite
// agendamentos em sequência.
func RangesOverlap(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && endA.After(startB)
}
