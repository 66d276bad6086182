package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
)

type ListBarberAppointments struct {
	repo domain.Repository
}

func NewListBarberAppointments(repo domain.Repository) *ListBarberAppointments {
	return &ListBarberAppointments{repo: repo}
}

func (uc *ListBarberAppointments) Execute(
	ctx context.Context,
	barberID uint,
	filter domain.BarberListFilter,
) ([]dto.BarberAppointmentDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForBarber(ctx, barberID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BarberAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.BarberAppointmentDTO{
			ID:              ap.ID,
			AppointmentDate: ap.AppointmentDate,
			ServiceType:     ap.ServiceType,
			Price:           ap.Price,
			DurationMin:     ap.DurationMin,
			Notes:           ap.Notes,
			Status:          ap.Status,
			CustomerName:    ap.Customer.Name,
			CustomerPhone:   ap.Customer.Phone,
		})
	}

	return out, nil
}
