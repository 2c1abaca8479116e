package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
	"github.com/jcastillo/ventas-pap-api/internal/domain"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
	"github.com/jcastillo/ventas-pap-api/internal/domain/repository"
)

const defaultLeaderboardLimit = 10

// LeaderboardUseCase agrega ventas aprobadas por representante en una ventana y
// las devuelve ordenadas por la métrica pedida.
//
// Solo contribuyen ventas approved con sale_date dentro de la ventana; un
// representante sin ventas aprobadas en la ventana no aparece (sin relleno de
// ceros). El filtro de estado va en la consulta; la ventana se aplica en memoria.
type LeaderboardUseCase struct {
	saleRepo repository.SaleRepository
	maxLimit int
}

// NewLeaderboardUseCase construye el caso de uso. maxLimit acota el parámetro
// limit de la API (0 → sin tope configurado, se usa el default).
func NewLeaderboardUseCase(saleRepo repository.SaleRepository, maxLimit int) *LeaderboardUseCase {
	return &LeaderboardUseCase{saleRepo: saleRepo, maxLimit: maxLimit}
}

// Rank devuelve el leaderboard de la ventana. metric vacío → totalPoints.
//
// Desempate (política explícita, determinista y reproducible): métrica
// descendente, luego nombre del representante ascendente, luego ID ascendente.
func (uc *LeaderboardUseCase) Rank(ctx context.Context, period, metric string, limit int) (*dto.LeaderboardResponse, error) {
	if period == "" {
		period = PeriodMonth
	}
	if !ValidPeriod(period) {
		return nil, domain.ErrInvalidInput
	}
	if metric == "" {
		metric = dto.MetricTotalPoints
	}
	if metric != dto.MetricTotalPoints && metric != dto.MetricTotalSales {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if uc.maxLimit > 0 && limit > uc.maxLimit {
		limit = uc.maxLimit
	}

	sales, err := uc.saleRepo.ListByStatus(ctx, entity.SaleStatusApproved)
	if err != nil {
		return nil, err
	}

	entries := rankSales(sales, windowStart(time.Now(), period), metric, limit)
	return &dto.LeaderboardResponse{Period: period, Metric: metric, Entries: entries}, nil
}

// rankSales agrupa, ordena y asigna ranking denso 1-based. Separado de Rank
// para poder probarlo con conjuntos de ventas construidos a mano.
func rankSales(sales []*entity.Sale, start time.Time, metric string, limit int) []dto.LeaderboardEntry {
	byRep := make(map[string]*dto.LeaderboardEntry)
	for _, s := range sales {
		if s.Status != entity.SaleStatusApproved || !inWindow(s.SaleDate, start) {
			continue
		}
		e, ok := byRep[s.SalesRepID]
		if !ok {
			e = &dto.LeaderboardEntry{SalesRepID: s.SalesRepID, SalesRepName: s.SalesRepName}
			byRep[s.SalesRepID] = e
		}
		e.TotalSales++
		e.TotalPoints += s.TotalPoints
	}

	entries := make([]dto.LeaderboardEntry, 0, len(byRep))
	for _, e := range byRep {
		entries = append(entries, *e)
	}

	metricOf := func(e dto.LeaderboardEntry) int {
		if metric == dto.MetricTotalSales {
			return e.TotalSales
		}
		return e.TotalPoints
	}
	sort.Slice(entries, func(i, j int) bool {
		mi, mj := metricOf(entries[i]), metricOf(entries[j])
		if mi != mj {
			return mi > mj
		}
		if entries[i].SalesRepName != entries[j].SalesRepName {
			return entries[i].SalesRepName < entries[j].SalesRepName
		}
		return entries[i].SalesRepID < entries[j].SalesRepID
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
