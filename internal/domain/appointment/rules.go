package appointment

import "github.com/BruksfildServices01/barbershop-booking/internal/config"

// Rules concentra os parâmetros de agendamento. É imutável depois de
// construído e injetado nos use cases, para manter o núcleo testável com
// parâmetros variados.
type Rules struct {
	SlotWidthMin        int
	SameDayNoticeMin    int
	MaxAdvanceMonths    int
	CancelDeadlineHours int
	MaxPerDay           int
}

func DefaultRules() Rules {
	return Rules{
		SlotWidthMin:        20,
		SameDayNoticeMin:    15,
		MaxAdvanceMonths:    3,
		CancelDeadlineHours: 1,
		MaxPerDay:           2,
	}
}

func RulesFromConfig(cfg *config.Config) Rules {
	return Rules{
		SlotWidthMin:        cfg.SlotWidthMin,
		SameDayNoticeMin:    cfg.SameDayNoticeMin,
		MaxAdvanceMonths:    cfg.MaxAdvanceMonths,
		CancelDeadlineHours: cfg.CancelDeadlineHours,
		MaxPerDay:           cfg.MaxPerDay,
	}
}
