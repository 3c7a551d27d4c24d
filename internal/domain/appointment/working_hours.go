package appointment

import "time"

// WorkingHoursSpec é o expediente efetivo de um barbeiro em uma data,
// já resolvido pela cadeia de precedência. Valor derivado, nunca
// persistido nem cacheado entre requisições.
type WorkingHoursSpec struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	BreakStart string `json:"break_start,omitempty"`
	BreakEnd   string `json:"break_end,omitempty"`
}

func (s *WorkingHoursSpec) HasBreak() bool {
	return s.BreakStart != "" && s.BreakEnd != ""
}

// minutesOfDay converte "15:04" em minutos desde meia-noite.
func minutesOfDay(hm string) int {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

func clockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// AtTime materializa um "15:04" no dia (e timezone) de referência.
func AtTime(day time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	)
}

// Contains valida se [start,end) cabe dentro do expediente.
// A comparação é feita sobre hora-do-dia, não sobre timestamps.
func (s *WorkingHoursSpec) Contains(start, end time.Time) bool {
	return clockMinutes(start) >= minutesOfDay(s.Start) &&
		clockMinutes(end) <= minutesOfDay(s.End)
}

// IntersectsBreak valida se [start,end) invade a pausa.
func (s *WorkingHoursSpec) IntersectsBreak(start, end time.Time) bool {
	if !s.HasBreak() {
		return false
	}
	return clockMinutes(start) < minutesOfDay(s.BreakEnd) &&
		clockMinutes(end) > minutesOfDay(s.BreakStart)
}
