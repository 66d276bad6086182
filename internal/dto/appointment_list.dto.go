package dto

import "time"

type BarberRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CustomerAppointmentDTO struct {
	ID              uint      `json:"id"`
	AppointmentDate time.Time `json:"appointment_date"`
	ServiceType     *string   `json:"service_type,omitempty"`
	Price           *float64  `json:"price,omitempty"`
	DurationMin     *int      `json:"duration_min,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status,omitempty"`
	Barber          BarberRef `json:"barber"`
}

type BarberAppointmentDTO struct {
	ID              uint      `json:"id"`
	AppointmentDate time.Time `json:"appointment_date"`
	ServiceType     *string   `json:"service_type,omitempty"`
	Price           *float64  `json:"price,omitempty"`
	DurationMin     *int      `json:"duration_min,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status,omitempty"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
}
