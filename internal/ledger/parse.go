package ledger

import (
	"strconv"
	"strings"
	"time"
)

const (
	DayFormat     = "2006-01-02"
	DayTimeFormat = "2006-01-02T15:04"
)

// ParseDecimal: valor decimal não negativo vindo do formulário como texto
// (quantidades em m³, preço unitário).
func ParseDecimal(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, Invalid(field, "valor obrigatório")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, Invalid(field, "valor numérico inválido")
	}
	if v < 0 {
		return 0, Invalid(field, "não pode ser negativo")
	}
	return v, nil
}

// ParseCount: inteiro não negativo (unidades).
func ParseCount(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, Invalid(field, "valor obrigatório")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, Invalid(field, "valor inteiro inválido")
	}
	if v < 0 {
		return 0, Invalid(field, "não pode ser negativo")
	}
	return v, nil
}

// ParseDay: data "YYYY-MM-DD" no fuso local.
func ParseDay(field, raw string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, Invalid(field, "data deve ser 'YYYY-MM-DD'")
	}
	return t, nil
}

// ParseDayTime: data e hora "YYYY-MM-DDTHH:MM" (formato do input
// datetime-local) no fuso local.
func ParseDayTime(field, raw string) (time.Time, error) {
	t, err := time.ParseInLocation(DayTimeFormat, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, Invalid(field, "data deve ser 'YYYY-MM-DDTHH:MM'")
	}
	return t, nil
}

// Day: trunca para o começo do dia no fuso do próprio instante.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayBounds: primeiro e último instante do dia, inclusivos.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := Day(t)
	return start, start.Add(24*time.Hour - time.Second)
}

// SameDay: igualdade de calendário, ignorando a hora.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
