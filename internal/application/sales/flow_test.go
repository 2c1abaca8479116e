package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastillo/ventas-pap-api/internal/application/analytics"
	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
	"github.com/jcastillo/ventas-pap-api/pkg/config"
)

// Flujo completo: registro → aprobación → leaderboard. Los puntos que aparecen
// en el ranking deben ser exactamente los derivados del catálogo al registrar.
func TestFlujoCompleto_RegistroAprobacionLeaderboard(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSaleRepo()
	notifier := &fakeNotifier{}
	cfg := config.SalesConfig{RejectionReasonRequired: true}

	submitUC := newSubmitUC(repo, notifier, cfg)
	decideUC := newDecideUC(repo, notifier, cfg)
	leaderboardUC := analytics.NewLeaderboardUseCase(repo, 0)

	// Dos líneas: att-1gig (8 pts) + frontier-500 (4 pts) = 12 puntos.
	in := validRequest()
	in.Products = []dto.SaleProductInput{
		{ProductID: "att-1gig"},
		{ProductID: "frontier-500"},
	}
	submitted, err := submitUC.Submit(ctx, repID, repName, in)
	require.NoError(t, err)
	require.Equal(t, 12, submitted.TotalPoints)

	// Mientras está pendiente no aparece en el leaderboard.
	board, err := leaderboardUC.Rank(ctx, analytics.PeriodMonth, dto.MetricTotalPoints, 10)
	require.NoError(t, err)
	assert.Empty(t, board.Entries, "una venta pendiente no suma al ranking")

	_, err = decideUC.Decide(ctx, approverID, approverName, dto.DecideSaleRequest{
		SaleID: submitted.ID,
		Status: entity.SaleStatusApproved,
	})
	require.NoError(t, err)

	board, err = leaderboardUC.Rank(ctx, analytics.PeriodMonth, dto.MetricTotalPoints, 10)
	require.NoError(t, err)
	require.Len(t, board.Entries, 1)

	entry := board.Entries[0]
	assert.Equal(t, 1, entry.Rank)
	assert.Equal(t, repID, entry.SalesRepID)
	assert.Equal(t, repName, entry.SalesRepName)
	assert.Equal(t, 1, entry.TotalSales)
	assert.Equal(t, 12, entry.TotalPoints)
}

// Una venta rechazada nunca suma puntos al ranking.
func TestFlujoCompleto_RechazoNoSuma(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSaleRepo()
	cfg := config.SalesConfig{RejectionReasonRequired: true}

	submitUC := newSubmitUC(repo, &fakeNotifier{}, cfg)
	decideUC := newDecideUC(repo, &fakeNotifier{}, cfg)
	leaderboardUC := analytics.NewLeaderboardUseCase(repo, 0)

	submitted, err := submitUC.Submit(ctx, repID, repName, validRequest())
	require.NoError(t, err)

	_, err = decideUC.Decide(ctx, approverID, approverName, dto.DecideSaleRequest{
		SaleID:          submitted.ID,
		Status:          entity.SaleStatusRejected,
		RejectionReason: "cliente desistió",
	})
	require.NoError(t, err)

	board, err := leaderboardUC.Rank(ctx, analytics.PeriodMonth, dto.MetricTotalPoints, 10)
	require.NoError(t, err)
	assert.Empty(t, board.Entries)
}
