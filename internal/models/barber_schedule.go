package models

import "time"

// BarberSchedule é a janela de expediente de um barbeiro em uma data
// específica. No máximo um registro por (barbeiro, data), via índice único.
type BarberSchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint      `gorm:"uniqueIndex:idx_schedule_barber_date;not null" json:"barber_id"`
	Date     time.Time `gorm:"uniqueIndex:idx_schedule_barber_date;not null" json:"date"`

	StartTime string `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // HH:MM

	Active bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
