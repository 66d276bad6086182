package models

import "time"

// Agendamento ativo não tem status; só os cancelados recebem "cancelled".
const AppointmentStatusCancelled = "cancelled"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"index;not null" json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint `gorm:"index;not null" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	AppointmentDate time.Time `gorm:"index;not null" json:"appointment_date"`

	// Snapshot do serviço no momento da reserva: edições posteriores do
	// catálogo não alteram agendamentos já criados.
	ServiceID   *uint    `json:"-"`
	Service     *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	ServiceType *string  `gorm:"size:100" json:"service_type,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`

	Notes string `gorm:"size:255" json:"notes,omitempty"`

	Status string `gorm:"size:20" json:"status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
