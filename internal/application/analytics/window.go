// Package analytics contiene las proyecciones de solo lectura del portal:
// stats por ventana, leaderboard y resumen de dashboard.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ventanas de tiempo soportadas, ancladas a "ahora" en el momento de la consulta.
const (
	PeriodDay   = "day"   // medianoche de hoy → ahora
	PeriodWeek  = "week"  // domingo más reciente 00:00 → ahora
	PeriodMonth = "month" // día 1 del mes 00:00 → ahora
	PeriodYear  = "year"  // 1 de enero 00:00 → ahora
)

// ValidPeriod indica si p es una ventana conocida.
func ValidPeriod(p string) bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// windowStart devuelve el inicio de la ventana que contiene a now.
// Una venta fechada exactamente en el inicio pertenece a la ventana.
func windowStart(now time.Time, period string) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case PeriodDay:
		return midnight
	case PeriodWeek:
		// time.Weekday: domingo = 0
		return midnight.AddDate(0, 0, -int(now.Weekday()))
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	}
	return midnight
}

// previousWindowStart devuelve el inicio del período calendario inmediatamente
// anterior (ej: mes anterior completo para month). El período anterior es
// [previousWindowStart, windowStart).
func previousWindowStart(now time.Time, period string) time.Time {
	start := windowStart(now, period)
	switch period {
	case PeriodDay:
		return start.AddDate(0, 0, -1)
	case PeriodWeek:
		return start.AddDate(0, 0, -7)
	case PeriodMonth:
		return start.AddDate(0, -1, 0)
	case PeriodYear:
		return start.AddDate(-1, 0, 0)
	}
	return start.AddDate(0, 0, -1)
}

// inWindow indica si t cae en [start, ∞). El límite inferior es inclusivo:
// una venta fechada exactamente en start cuenta; un milisegundo antes, no.
func inWindow(t, start time.Time) bool {
	return !t.Before(start)
}

// percentChange calcula el delta porcentual (current - previous) / previous * 100
// redondeado a un decimal. Convención del negocio: si previous es 0 y current > 0
// el cambio es 100; si ambos son 0, el cambio es 0.
func percentChange(current, previous int) decimal.Decimal {
	if previous == 0 {
		if current > 0 {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero
	}
	cur := decimal.NewFromInt(int64(current))
	prev := decimal.NewFromInt(int64(previous))
	return cur.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(1)
}
