package handlers

import (
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// parseDate converte YYYY-MM-DD para o início do dia no fuso de referência.
func parseDate(dateStr string) (time.Time, error) {
	if !domain.IsValidDateString(dateStr) {
		return time.Time{}, httperr.Format("invalid_date", "Data inválida. Esperado YYYY-MM-DD.")
	}
	return timezone.ParseDate(dateStr)
}

// parseDateTime monta o instante de um horário HH:MM dentro do dia.
func parseDateTime(dateStr string, timeStr string) (time.Time, error) {
	day, err := parseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}

	minutes, err := domain.TimeToMinutes(timeStr)
	if err != nil {
		return time.Time{}, httperr.Format("invalid_time", "Horário inválido. Esperado HH:MM.")
	}

	return day.Add(time.Duration(minutes) * time.Minute), nil
}
