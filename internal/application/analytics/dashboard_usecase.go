package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
)

const dashboardTopPerformers = 5 // posiciones del leaderboard en el widget

// DashboardUseCase arma el resumen del portal: snapshot de stats del período y
// top-5 del leaderboard por puntos.
//
// Las dos proyecciones son independientes y se consultan en paralelo.
type DashboardUseCase struct {
	stats       *StatsUseCase
	leaderboard *LeaderboardUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats *StatsUseCase, leaderboard *LeaderboardUseCase) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, leaderboard: leaderboard}
}

// GetSummary construye el DashboardSummaryDTO del período indicado. salesRepID
// acota las stats a un representante; el leaderboard siempre es de toda la
// organización.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, period, salesRepID string) (*dto.DashboardSummaryDTO, error) {
	type statsResult struct {
		snap *dto.StatsSnapshot
		err  error
	}
	type boardResult struct {
		board *dto.LeaderboardResponse
		err   error
	}

	statsCh := make(chan statsResult, 1)
	boardCh := make(chan boardResult, 1)

	go func() {
		snap, err := uc.stats.ComputeStats(ctx, period, salesRepID)
		statsCh <- statsResult{snap, err}
	}()
	go func() {
		board, err := uc.leaderboard.Rank(ctx, period, dto.MetricTotalPoints, dashboardTopPerformers)
		boardCh <- boardResult{board, err}
	}()

	stats := <-statsCh
	board := <-boardCh

	// Los errores se propagan tal cual: los centinelas de dominio deben llegar
	// intactos a la capa HTTP para mapearse al status correcto.
	if stats.err != nil {
		return nil, stats.err
	}
	if board.err != nil {
		return nil, board.err
	}

	return &dto.DashboardSummaryDTO{
		Stats:         *stats.snap,
		TopPerformers: board.board.Entries,
		DateLabel:     periodLabel(time.Now(), stats.snap.Period),
	}, nil
}

// PeriodLabel devuelve la etiqueta legible del período respecto de ahora.
func PeriodLabel(period string) string {
	return periodLabel(time.Now(), period)
}

// periodLabel devuelve una etiqueta legible del período, ej: "Agosto 2026".
func periodLabel(t time.Time, period string) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	switch period {
	case PeriodDay:
		return t.Format("02/01/2006")
	case PeriodWeek:
		return "Semana del " + windowStart(t, PeriodWeek).Format("02/01/2006")
	case PeriodYear:
		return fmt.Sprintf("%d", t.Year())
	default:
		return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
	}
}
