package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
	"github.com/jcastillo/ventas-pap-api/internal/application/sales"
	"github.com/jcastillo/ventas-pap-api/internal/domain"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
	"github.com/jcastillo/ventas-pap-api/pkg/config"
)

func seedSales(t *testing.T, repo *fakeSaleRepo) (pendingID string) {
	t.Helper()
	uc := newSubmitUC(repo, &fakeNotifier{}, config.SalesConfig{})

	// Dos ventas del mismo rep; una se aprueba.
	first, err := uc.Submit(context.Background(), repID, repName, validRequest())
	require.NoError(t, err)
	second, err := uc.Submit(context.Background(), repID, repName, validRequest())
	require.NoError(t, err)

	decideUC := newDecideUC(repo, &fakeNotifier{}, config.SalesConfig{})
	_, err = decideUC.Decide(context.Background(), approverID, approverName, dto.DecideSaleRequest{
		SaleID: first.ID,
		Status: entity.SaleStatusApproved,
	})
	require.NoError(t, err)
	return second.ID
}

func TestList_PorRepresentanteYEstado(t *testing.T) {
	repo := newFakeSaleRepo()
	seedSales(t, repo)
	uc := sales.NewSaleUseCase(repo)

	// Filtro por rep: ambas ventas.
	out, err := uc.List(context.Background(), "", repID, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)

	// Rep + estado: el estado se filtra en memoria sobre las ventas del rep.
	out, err = uc.List(context.Background(), entity.SaleStatusApproved, repID, 0)
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, entity.SaleStatusApproved, out.Items[0].Status)

	// Estado inválido.
	_, err = uc.List(context.Background(), "archivada", "", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_Inexistente_NilSinError(t *testing.T) {
	uc := sales.NewSaleUseCase(newFakeSaleRepo())
	out, err := uc.GetByID(context.Background(), "venta-fantasma")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestAdminUpdate_RecalculaTotalesDesdeCatalogo(t *testing.T) {
	repo := newFakeSaleRepo()
	pendingID := seedSales(t, repo)
	uc := sales.NewSaleUseCase(repo)

	newType := entity.SaleTypeUpgrade
	out, err := uc.AdminUpdate(context.Background(), pendingID, dto.AdminUpdateSaleRequest{
		SaleType: &newType,
		Products: []dto.SaleProductInput{
			{ProductID: "frontier-500", Quantity: 2, Points: 777}, // puntos forjados, se ignoran
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleTypeUpgrade, out.SaleType)
	assert.Equal(t, 4, out.TotalPoints, "puntos del catálogo, no los del cliente")
	assert.True(t, out.TotalValue.Equal(decimal.RequireFromString("90")), "45 × 2")
}

func TestAdminUpdate_EstadoDirectoIncluidoCancelled(t *testing.T) {
	repo := newFakeSaleRepo()
	pendingID := seedSales(t, repo)
	uc := sales.NewSaleUseCase(repo)

	cancelled := entity.SaleStatusCancelled
	out, err := uc.AdminUpdate(context.Background(), pendingID, dto.AdminUpdateSaleRequest{
		Status: &cancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCancelled, out.Status)

	invalid := "archivada"
	_, err = uc.AdminUpdate(context.Background(), pendingID, dto.AdminUpdateSaleRequest{
		Status: &invalid,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdminUpdate_VentaInexistente(t *testing.T) {
	uc := sales.NewSaleUseCase(newFakeSaleRepo())
	_, err := uc.AdminUpdate(context.Background(), "venta-fantasma", dto.AdminUpdateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeSaleRepo()
	pendingID := seedSales(t, repo)
	uc := sales.NewSaleUseCase(repo)

	require.NoError(t, uc.Delete(context.Background(), pendingID))

	out, err := uc.GetByID(context.Background(), pendingID)
	require.NoError(t, err)
	assert.Nil(t, out)

	assert.ErrorIs(t, uc.Delete(context.Background(), pendingID), domain.ErrNotFound)
}
