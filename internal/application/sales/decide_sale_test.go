package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
	"github.com/jcastillo/ventas-pap-api/internal/application/sales"
	"github.com/jcastillo/ventas-pap-api/internal/domain"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
	"github.com/jcastillo/ventas-pap-api/pkg/config"
	"github.com/jcastillo/ventas-pap-api/pkg/logger"
)

const (
	approverID   = "ops-001"
	approverName = "Carlos Ruiz"
)

// seedPendingSale registra una venta pendiente vía el caso de uso real y
// devuelve su ID.
func seedPendingSale(t *testing.T, repo *fakeSaleRepo) string {
	t.Helper()
	uc := newSubmitUC(repo, &fakeNotifier{}, config.SalesConfig{})
	out, err := uc.Submit(context.Background(), repID, repName, validRequest())
	require.NoError(t, err)
	return out.ID
}

func newDecideUC(repo *fakeSaleRepo, notifier *fakeNotifier, cfg config.SalesConfig) *sales.DecideSaleUseCase {
	return sales.NewDecideSaleUseCase(repo, notifier, cfg, logger.Nop())
}

func TestDecide_Aprobar(t *testing.T) {
	repo := newFakeSaleRepo()
	saleID := seedPendingSale(t, repo)
	notifier := &fakeNotifier{}
	uc := newDecideUC(repo, notifier, config.SalesConfig{RejectionReasonRequired: true})

	out, err := uc.Decide(context.Background(), approverID, approverName, dto.DecideSaleRequest{
		SaleID: saleID,
		Status: entity.SaleStatusApproved,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusApproved, out.Status)
	assert.Equal(t, approverID, out.ApprovedBy)
	assert.Equal(t, approverName, out.ApproverName)
	require.NotNil(t, out.ApprovedAt)
	assert.Empty(t, out.RejectionReason)

	toRep := notifier.sentTo(repID)
	require.Len(t, toRep, 1)
	assert.Equal(t, entity.NotificationSaleApproved, toRep[0].Type)
}

func TestDecide_RechazarConMotivo(t *testing.T) {
	repo := newFakeSaleRepo()
	saleID := seedPendingSale(t, repo)
	notifier := &fakeNotifier{}
	uc := newDecideUC(repo, notifier, config.SalesConfig{RejectionReasonRequired: true})

	out, err := uc.Decide(context.Background(), approverID, approverName, dto.DecideSaleRequest{
		SaleID:          saleID,
		Status:          entity.SaleStatusRejected,
		RejectionReason: "dirección fuera de cobertura",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusRejected, out.Status)
	assert.Equal(t, "dirección fuera de cobertura", out.RejectionReason)

	toRep := notifier.sentTo(repID)
	require.Len(t, toRep, 1)
	assert.Equal(t, entity.NotificationSaleRejected, toRep[0].Type)
	assert.Contains(t, toRep[0].Message, "dirección fuera de cobertura")
}

func TestDecide_RechazarSinMotivo_Invalido(t *testing.T) {
	repo := newFakeSaleRepo()
	saleID := seedPendingSale(t, repo)
	uc := newDecideUC(repo, &fakeNotifier{}, config.SalesConfig{RejectionReasonRequired: true})

	_, err := uc.Decide(context.Background(), approverID, approverName, dto.DecideSaleRequest{
		SaleID: saleID,
		Status: entity.SaleStatusRejected,
		// solo espacios: el motivo se recorta antes de validarse
		RejectionReason: "   ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// La venta sigue pendiente: la validación falló antes de escribir.
	sale, _ := repo.GetByID(context.Background(), saleID)
	assert.Equal(t, entity.SaleStatusPending, sale.Status)
}

func TestDecide_RechazarSinMotivo_PermitidoPorPolitica(t *testing.T) {
	repo := newFakeSaleRepo()
	saleID := seedPendingSale(t, repo)
	uc := newDecideUC(repo, &fakeNotifier{}, config.SalesConfig{RejectionReasonRequired: false})

	out, err := uc.Decide(context.Background(), approverID, approverName, dto.DecideSaleRequest{
		SaleID: saleID,
		Status: entity.SaleStatusRejected,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusRejected, out.Status)
}

func TestDecide_EstadoInvalido(t *testing.T) {
	repo := newFakeSaleRepo()
	saleID := seedPendingSale(t, repo)
	uc := newDecideUC(repo, &fakeNotifier{}, config.SalesConfig{})

	for _, status := range []string{"", entity.SaleStatusPending, entity.SaleStatusCancelled, "otro"} {
		_, err := uc.Decide(context.Background(), approverID, approverName, dto.DecideSaleRequest{
			SaleID: saleID,
			Status: status,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "status %q debe rechazarse", status)
	}
}

func TestDecide_VentaInexistente_NotFound(t *testing.T) {
	uc := newDecideUC(newFakeSaleRepo(), &fakeNotifier{}, config.SalesConfig{})

	_, err := uc.Decide(context.Background(), approverID, approverName, dto.DecideSaleRequest{
		SaleID: "venta-fantasma",
		Status: entity.SaleStatusApproved,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La segunda decisión sobre la misma venta no debe pisar a la primera.
func TestDecide_SegundaDecision_Conflict(t *testing.T) {
	repo := newFakeSaleRepo()
	saleID := seedPendingSale(t, repo)
	notifier := &fakeNotifier{}
	uc := newDecideUC(repo, notifier, config.SalesConfig{RejectionReasonRequired: true})

	_, err := uc.Decide(context.Background(), approverID, approverName, dto.DecideSaleRequest{
		SaleID: saleID,
		Status: entity.SaleStatusApproved,
	})
	require.NoError(t, err)

	_, err = uc.Decide(context.Background(), "ops-002", "Ana Torres", dto.DecideSaleRequest{
		SaleID:          saleID,
		Status:          entity.SaleStatusRejected,
		RejectionReason: "duplicada",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// La primera decisión queda intacta.
	sale, _ := repo.GetByID(context.Background(), saleID)
	assert.Equal(t, entity.SaleStatusApproved, sale.Status)
	assert.Equal(t, approverID, sale.ApprovedBy)
}

func TestDecide_NotificadorCaido_LaDecisionQuedaAplicada(t *testing.T) {
	repo := newFakeSaleRepo()
	saleID := seedPendingSale(t, repo)
	uc := newDecideUC(repo, &fakeNotifier{fail: true}, config.SalesConfig{})

	out, err := uc.Decide(context.Background(), approverID, approverName, dto.DecideSaleRequest{
		SaleID: saleID,
		Status: entity.SaleStatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusApproved, out.Status)
}
