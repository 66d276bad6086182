package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func intPtr(v int) *int { return &v }

func TestEffectiveDurationFallbackChain(t *testing.T) {
	r := DefaultRules()

	// 1. snapshot gravado vence
	ap := &models.Appointment{
		DurationMin: intPtr(45),
		Service:     &models.Service{DurationMin: 30},
	}
	assert.Equal(t, 45, r.EffectiveDuration(ap))

	// 2. sem snapshot, vale a duração atual do serviço
	ap = &models.Appointment{Service: &models.Service{DurationMin: 30}}
	assert.Equal(t, 30, r.EffectiveDuration(ap))

	// 3. sem nada, um slot
	ap = &models.Appointment{}
	assert.Equal(t, 20, r.EffectiveDuration(ap))

	// snapshot zerado não conta
	ap = &models.Appointment{DurationMin: intPtr(0)}
	assert.Equal(t, 20, r.EffectiveDuration(ap))
}

func TestOccupiedEndRoundsToWholeSlots(t *testing.T) {
	r := DefaultRules()
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	// 30 min ocupa 2 slots de 20 => fim às 10:40
	ap := &models.Appointment{
		AppointmentDate: start,
		DurationMin:     intPtr(30),
	}
	assert.Equal(t, start.Add(40*time.Minute), r.OccupiedEnd(ap))
}

func TestFindOverlap(t *testing.T) {
	r := DefaultRules()
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	existing := []models.Appointment{
		{ID: 1, AppointmentDate: at(10, 0), DurationMin: intPtr(40)}, // 10:00–10:40
		{ID: 2, AppointmentDate: at(14, 0)},                          // 14:00–14:20 (fallback)
	}

	// dentro do intervalo ocupado
	hit := r.FindOverlap(at(10, 20), 20, existing)
	require.NotNil(t, hit)
	assert.Equal(t, uint(1), hit.ID)

	// candidato longo que engole um agendamento curto
	hit = r.FindOverlap(at(13, 40), 60, existing)
	require.NotNil(t, hit)
	assert.Equal(t, uint(2), hit.ID)

	// encostado no fim: livre
	assert.Nil(t, r.FindOverlap(at(10, 40), 20, existing))

	// encostado no início: livre
	assert.Nil(t, r.FindOverlap(at(9, 40), 20, existing))

	// dia vazio
	assert.Nil(t, r.FindOverlap(at(10, 0), 20, nil))
}
