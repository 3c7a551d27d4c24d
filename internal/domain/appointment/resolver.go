package appointment

import "github.com/diegodonald/saas-barber-sub001/internal/models"

// ScheduleSources reúne as quatro fontes de horário carregadas para um
// barbeiro/barbearia/data. Qualquer campo pode ser nil (registro ausente).
type ScheduleSources struct {
	BarberException *models.BarberException
	BarberSchedule  *models.BarberSchedule
	GlobalException *models.GlobalException
	GlobalSchedule  *models.GlobalSchedule
}

// Cada passo devolve (spec, definitivo). spec nil com definitivo=true
// significa "não trabalha nesse dia"; definitivo=false passa adiante.
type resolverStep func(ScheduleSources) (*WorkingHoursSpec, bool)

// Ordem de precedência: exceção do barbeiro → horário do barbeiro →
// exceção da barbearia → horário da barbearia.
var resolverChain = []resolverStep{
	resolveBarberException,
	resolveBarberSchedule,
	resolveGlobalException,
	resolveGlobalSchedule,
}

// ResolveWorkingHours aplica a cadeia de precedência e devolve o
// expediente efetivo, ou nil se o barbeiro não trabalha na data.
// Função pura sobre as quatro fontes.
func ResolveWorkingHours(src ScheduleSources) *WorkingHoursSpec {
	for _, step := range resolverChain {
		if spec, definitive := step(src); definitive {
			return spec
		}
	}
	return nil
}

func resolveBarberException(src ScheduleSources) (*WorkingHoursSpec, bool) {
	ex := src.BarberException
	if ex == nil {
		return nil, false
	}

	if ex.NotWorking() {
		return nil, true
	}

	// Horário especial ignora todas as outras fontes e não tem pausa.
	return &WorkingHoursSpec{
		Start: ex.StartTime,
		End:   ex.EndTime,
	}, true
}

func resolveBarberSchedule(src ScheduleSources) (*WorkingHoursSpec, bool) {
	sch := src.BarberSchedule
	if sch == nil || !sch.IsWorking {
		return nil, false
	}

	return &WorkingHoursSpec{
		Start:      sch.StartTime,
		End:        sch.EndTime,
		BreakStart: sch.BreakStart,
		BreakEnd:   sch.BreakEnd,
	}, true
}

func resolveGlobalException(src ScheduleSources) (*WorkingHoursSpec, bool) {
	ex := src.GlobalException
	if ex == nil {
		return nil, false
	}

	if ex.Type == models.GlobalExceptionClosed {
		return nil, true
	}

	return &WorkingHoursSpec{
		Start: ex.OpenTime,
		End:   ex.CloseTime,
	}, true
}

func resolveGlobalSchedule(src ScheduleSources) (*WorkingHoursSpec, bool) {
	sch := src.GlobalSchedule
	if sch == nil || !sch.IsOpen {
		return nil, false
	}

	return &WorkingHoursSpec{
		Start:      sch.OpenTime,
		End:        sch.CloseTime,
		BreakStart: sch.LunchStart,
		BreakEnd:   sch.LunchEnd,
	}, true
}
