package timezone

import "time"

// Comparações de dia-calendário usam sempre UTC, independente do fuso do
// cliente, para não haver deriva na virada do dia.
var Reference = time.UTC

func Now() time.Time {
	return time.Now().In(Reference)
}

// DayStart trunca o instante para a meia-noite do dia em UTC.
func DayStart(t time.Time) time.Time {
	t = t.In(Reference)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Reference)
}

// DayRange devolve [início do dia, início do dia seguinte).
func DayRange(t time.Time) (time.Time, time.Time) {
	start := DayStart(t)
	return start, start.Add(24 * time.Hour)
}

func SameDay(a, b time.Time) bool {
	return DayStart(a).Equal(DayStart(b))
}

// ParseDate interpreta YYYY-MM-DD como meia-noite UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Reference)
}

func FormatDate(t time.Time) string {
	return t.In(Reference).Format("2006-01-02")
}
