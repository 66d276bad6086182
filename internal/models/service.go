package models

import "time"

// Status do serviço: nunca é removido fisicamente depois de referenciado
// por um agendamento; desativação/reativação alterna o status.
const (
	ServiceStatusActive   = "active"
	ServiceStatusInactive = "inactive"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// Identificador público, estável para o front e para as requisições
	PublicID string `gorm:"size:36;uniqueIndex;not null" json:"service_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`

	Status string `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) IsActive() bool {
	return s.Status == ServiceStatusActive
}
