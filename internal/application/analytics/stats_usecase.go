package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
	"github.com/jcastillo/ventas-pap-api/internal/domain"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
	"github.com/jcastillo/ventas-pap-api/internal/domain/repository"
)

// StatsUseCase calcula el snapshot de estadísticas de una ventana de tiempo.
//
// La consulta al almacén filtra solo por representante (una igualdad); la
// ventana de fechas se aplica en memoria para no exigir índices compuestos.
// Proyección de solo lectura: tolera un conjunto vacío sin error.
type StatsUseCase struct {
	saleRepo repository.SaleRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(saleRepo repository.SaleRepository) *StatsUseCase {
	return &StatsUseCase{saleRepo: saleRepo}
}

// ComputeStats calcula contadores y sumas de la ventana para un representante
// (o para toda la organización si salesRepID está vacío), más los deltas
// porcentuales contra el período calendario anterior.
func (uc *StatsUseCase) ComputeStats(ctx context.Context, period, salesRepID string) (*dto.StatsSnapshot, error) {
	if period == "" {
		period = PeriodMonth
	}
	if !ValidPeriod(period) {
		return nil, domain.ErrInvalidInput
	}

	var (
		sales []*entity.Sale
		err   error
	)
	if salesRepID != "" {
		sales, err = uc.saleRepo.ListBySalesRep(ctx, salesRepID)
	} else {
		sales, err = uc.saleRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	start := windowStart(now, period)
	prevStart := previousWindowStart(now, period)

	snap := &dto.StatsSnapshot{
		Period:     period,
		TotalValue: decimal.Zero,
	}
	var prevSales, prevPoints int

	for _, s := range sales {
		switch {
		case inWindow(s.SaleDate, start):
			snap.TotalSales++
			snap.TotalValue = snap.TotalValue.Add(s.TotalValue)
			snap.TotalPoints += s.TotalPoints
			switch s.Status {
			case entity.SaleStatusPending:
				snap.PendingCount++
			case entity.SaleStatusApproved:
				snap.ApprovedCount++
				snap.ApprovedPoints += s.TotalPoints
			case entity.SaleStatusRejected:
				snap.RejectedCount++
			}
		case inWindow(s.SaleDate, prevStart) && s.SaleDate.Before(start):
			prevSales++
			prevPoints += s.TotalPoints
		}
	}

	snap.TotalValue = snap.TotalValue.Round(2)
	snap.SalesChange = percentChange(snap.TotalSales, prevSales)
	snap.PointsChange = percentChange(snap.TotalPoints, prevPoints)

	return snap, nil
}
