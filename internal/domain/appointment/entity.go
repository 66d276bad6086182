package appointment

import "time"

type AvailabilityInput struct {
	BarberID uint
	Date     time.Time // meia-noite UTC do dia consultado
	DateStr  string    // YYYY-MM-DD, usado na chave do cache

	// Opcional: serviço desejado. Vazio = um slot.
	ServicePublicID string
}

type CreateInput struct {
	CustomerID      uint
	BarberID        uint
	AppointmentDate time.Time
	ServicePublicID string
	ExpectedPrice   *float64
	Notes           string
}

type BarberListFilter struct {
	Status string     // "cancelled" ou vazio
	Date   *time.Time // filtra pelo dia-calendário
}

// BarberInfo são os dados de exibição do barbeiro anexados às respostas.
type BarberInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
