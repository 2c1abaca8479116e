package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastillo/ventas-pap-api/internal/domain"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
	"github.com/jcastillo/ventas-pap-api/internal/domain/repository"
)

// stubSaleRepo repositorio de solo lectura con un conjunto fijo de ventas.
type stubSaleRepo struct {
	sales []*entity.Sale
}

func (r *stubSaleRepo) Create(context.Context, *entity.Sale) error { return nil }
func (r *stubSaleRepo) GetByID(context.Context, string) (*entity.Sale, error) {
	return nil, nil
}
func (r *stubSaleRepo) ListAll(context.Context) ([]*entity.Sale, error) {
	return r.sales, nil
}
func (r *stubSaleRepo) ListBySalesRep(_ context.Context, repID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.SalesRepID == repID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *stubSaleRepo) ListByStatus(_ context.Context, status string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *stubSaleRepo) ListRecent(context.Context, int) ([]*entity.Sale, error) {
	return r.sales, nil
}
func (r *stubSaleRepo) ApplyDecision(context.Context, string, repository.DecisionUpdate) (bool, error) {
	return false, nil
}
func (r *stubSaleRepo) Update(context.Context, *entity.Sale) error { return nil }
func (r *stubSaleRepo) Delete(context.Context, string) error       { return nil }

func statSale(repID, status string, points int, value string, date time.Time) *entity.Sale {
	return &entity.Sale{
		SalesRepID:  repID,
		Status:      status,
		TotalPoints: points,
		TotalValue:  decimal.RequireFromString(value),
		SaleDate:    date,
	}
}

func TestComputeStats_VentanaActual(t *testing.T) {
	now := time.Now()
	curStart := windowStart(now, PeriodMonth)
	prevStart := previousWindowStart(now, PeriodMonth)

	repo := &stubSaleRepo{sales: []*entity.Sale{
		// ventana actual
		statSale("r1", entity.SaleStatusApproved, 8, "80", curStart),
		statSale("r1", entity.SaleStatusPending, 4, "45", curStart.Add(time.Hour)),
		statSale("r2", entity.SaleStatusRejected, 5, "70", curStart.Add(2*time.Hour)),
		// período anterior
		statSale("r1", entity.SaleStatusApproved, 6, "65", prevStart),
		// fuera de ambas ventanas
		statSale("r1", entity.SaleStatusApproved, 12, "180", prevStart.Add(-time.Hour)),
	}}

	uc := NewStatsUseCase(repo)
	snap, err := uc.ComputeStats(context.Background(), PeriodMonth, "")
	require.NoError(t, err)

	assert.Equal(t, 3, snap.TotalSales)
	assert.Equal(t, 17, snap.TotalPoints)
	assert.True(t, snap.TotalValue.Equal(decimal.RequireFromString("195")))
	assert.Equal(t, 1, snap.PendingCount)
	assert.Equal(t, 1, snap.ApprovedCount)
	assert.Equal(t, 1, snap.RejectedCount)
	assert.Equal(t, 8, snap.ApprovedPoints, "solo puntos de ventas approved")

	// Actual: 3 ventas / 17 puntos; anterior: 1 venta / 6 puntos.
	assert.True(t, snap.SalesChange.Equal(decimal.RequireFromString("200")))
	assert.True(t, snap.PointsChange.Equal(decimal.RequireFromString("183.3")))
}

func TestComputeStats_FiltraPorRepresentante(t *testing.T) {
	now := time.Now()
	curStart := windowStart(now, PeriodMonth)

	repo := &stubSaleRepo{sales: []*entity.Sale{
		statSale("r1", entity.SaleStatusApproved, 8, "80", curStart),
		statSale("r2", entity.SaleStatusApproved, 4, "45", curStart),
	}}

	uc := NewStatsUseCase(repo)
	snap, err := uc.ComputeStats(context.Background(), PeriodMonth, "r1")
	require.NoError(t, err)

	assert.Equal(t, 1, snap.TotalSales)
	assert.Equal(t, 8, snap.TotalPoints)
}

func TestComputeStats_SinVentas_CerosSinError(t *testing.T) {
	uc := NewStatsUseCase(&stubSaleRepo{})
	snap, err := uc.ComputeStats(context.Background(), PeriodWeek, "")
	require.NoError(t, err)

	assert.Equal(t, 0, snap.TotalSales)
	assert.True(t, snap.TotalValue.IsZero())
	assert.True(t, snap.SalesChange.IsZero(), "0 → 0 es cambio 0, no 100")
	assert.True(t, snap.PointsChange.IsZero())
}

func TestComputeStats_PeriodoPorDefectoEsMes(t *testing.T) {
	uc := NewStatsUseCase(&stubSaleRepo{})
	snap, err := uc.ComputeStats(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonth, snap.Period)
}

func TestComputeStats_PeriodoInvalido(t *testing.T) {
	uc := NewStatsUseCase(&stubSaleRepo{})
	_, err := uc.ComputeStats(context.Background(), "quarter", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
