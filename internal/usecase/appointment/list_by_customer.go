package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
)

// Nome de exibição quando o barbeiro do agendamento não existe mais.
const unknownBarberName = "Barbeiro desconhecido"

type ListCustomerAppointments struct {
	repo domain.Repository
}

func NewListCustomerAppointments(repo domain.Repository) *ListCustomerAppointments {
	return &ListCustomerAppointments{repo: repo}
}

// Execute devolve os agendamentos do cliente em ordem cronológica,
// enriquecidos com os dados de exibição do barbeiro em uma única consulta.
func (uc *ListCustomerAppointments) Execute(
	ctx context.Context,
	customerID uint,
) ([]dto.CustomerAppointmentDTO, error) {

	appointments, err := uc.repo.ListAppointmentsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	barberIDs := make([]uint, 0, len(appointments))
	seen := make(map[uint]bool)
	for _, ap := range appointments {
		if !seen[ap.BarberID] {
			seen[ap.BarberID] = true
			barberIDs = append(barberIDs, ap.BarberID)
		}
	}

	barbers := make(map[uint]string, len(barberIDs))
	if len(barberIDs) > 0 {
		users, err := uc.repo.GetUsersByIDs(ctx, barberIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			barbers[u.ID] = u.Name
		}
	}

	out := make([]dto.CustomerAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		name, ok := barbers[ap.BarberID]
		if !ok {
			name = unknownBarberName
		}

		out = append(out, dto.CustomerAppointmentDTO{
			ID:              ap.ID,
			AppointmentDate: ap.AppointmentDate,
			ServiceType:     ap.ServiceType,
			Price:           ap.Price,
			DurationMin:     ap.DurationMin,
			Notes:           ap.Notes,
			Status:          ap.Status,
			Barber: dto.BarberRef{
				ID:   ap.BarberID,
				Name: name,
			},
		})
	}

	return out, nil
}
