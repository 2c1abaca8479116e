package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// Referencia fija: viernes 28 de agosto de 2026, 15:04:05.
var ref = time.Date(2026, time.August, 28, 15, 4, 5, 0, time.UTC)

func TestWindowStart(t *testing.T) {
	cases := []struct {
		period string
		want   time.Time
	}{
		{PeriodDay, time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)},
		// El domingo más reciente es el 23 de agosto.
		{PeriodWeek, time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)},
		{PeriodMonth, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{PeriodYear, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, windowStart(ref, tc.period), "period %s", tc.period)
	}
}

// Consultar un domingo debe anclar la semana a ese mismo domingo.
func TestWindowStart_SemanaEnDomingo(t *testing.T) {
	sunday := time.Date(2026, time.August, 23, 9, 30, 0, 0, time.UTC)
	want := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, windowStart(sunday, PeriodWeek))
}

func TestPreviousWindowStart(t *testing.T) {
	cases := []struct {
		period string
		want   time.Time
	}{
		{PeriodDay, time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC)},
		{PeriodWeek, time.Date(2026, time.August, 16, 0, 0, 0, 0, time.UTC)},
		{PeriodMonth, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{PeriodYear, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, previousWindowStart(ref, tc.period), "period %s", tc.period)
	}
}

// Borde de la ventana: el inicio exacto cuenta; un instante antes, no.
func TestInWindow_LimiteInferiorInclusivo(t *testing.T) {
	start := windowStart(ref, PeriodMonth)

	assert.True(t, inWindow(start, start), "una venta fechada exactamente en el inicio pertenece a la ventana")
	assert.False(t, inWindow(start.Add(-time.Millisecond), start), "un milisegundo antes queda fuera")
	assert.True(t, inWindow(start.Add(time.Millisecond), start))
}

func TestValidPeriod(t *testing.T) {
	for _, p := range []string{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear} {
		assert.True(t, ValidPeriod(p))
	}
	assert.False(t, ValidPeriod(""))
	assert.False(t, ValidPeriod("quarter"))
}

func TestPercentChange(t *testing.T) {
	cases := []struct {
		name     string
		current  int
		previous int
		want     string
	}{
		{"ambos cero", 0, 0, "0"},
		{"anterior cero con actual positivo", 7, 0, "100"},
		{"caída a cero", 0, 4, "-100"},
		{"crecimiento", 15, 10, "50"},
		{"caída", 5, 10, "-50"},
		{"redondeo a un decimal", 10, 3, "233.3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := percentChange(tc.current, tc.previous)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"percentChange(%d, %d) = %s, esperado %s", tc.current, tc.previous, got, tc.want)
		})
	}
}
