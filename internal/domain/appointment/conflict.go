package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// EffectiveDuration resolve a duração de um agendamento existente pela
// cadeia de fallback: snapshot gravado, depois a duração atual do
// serviço, por último a largura de um slot.
func (r Rules) EffectiveDuration(ap *models.Appointment) int {
	if ap.DurationMin != nil && *ap.DurationMin > 0 {
		return *ap.DurationMin
	}
	if ap.Service != nil && ap.Service.DurationMin > 0 {
		return ap.Service.DurationMin
	}
	return r.SlotWidthMin
}

// OccupiedEnd devolve o fim do intervalo ocupado pelo agendamento,
// arredondado para slots inteiros.
func (r Rules) OccupiedEnd(ap *models.Appointment) time.Time {
	slots := r.SlotsNeeded(r.EffectiveDuration(ap))
	return ap.AppointmentDate.Add(time.Duration(slots*r.SlotWidthMin) * time.Minute)
}

// FindOverlap testa o candidato [start, start+duração) contra cada
// agendamento existente e devolve o primeiro que conflita. Intervalos
// semiabertos: terminar exatamente onde outro começa não é conflito.
func (r Rules) FindOverlap(
	start time.Time,
	durationMin int,
	existing []models.Appointment,
) *models.Appointment {

	end := start.Add(time.Duration(durationMin) * time.Minute)

	for i := range existing {
		ex := &existing[i]
		exStart := ex.AppointmentDate
		exEnd := exStart.Add(time.Duration(r.EffectiveDuration(ex)) * time.Minute)

		if RangesOverlap(start, end, exStart, exEnd) {
			return ex
		}
	}

	return nil
}
