package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
	"github.com/jcastillo/ventas-pap-api/internal/domain"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
	"github.com/jcastillo/ventas-pap-api/internal/domain/repository"
	"github.com/jcastillo/ventas-pap-api/pkg/config"
	"github.com/jcastillo/ventas-pap-api/pkg/logger"
)

// SubmitSaleUseCase registra una venta nueva en estado pending.
//
// Los totales (valor y puntos) se calculan siempre en servidor desde el
// catálogo; el registro falla completo o se persiste completo: si la escritura
// falla no se emite ninguna notificación.
type SubmitSaleUseCase struct {
	saleRepo repository.SaleRepository
	notifier Notifier
	cfg      config.SalesConfig
	log      *logger.Logger
}

// NewSubmitSaleUseCase construye el caso de uso.
func NewSubmitSaleUseCase(saleRepo repository.SaleRepository, notifier Notifier, cfg config.SalesConfig, log *logger.Logger) *SubmitSaleUseCase {
	return &SubmitSaleUseCase{saleRepo: saleRepo, notifier: notifier, cfg: cfg, log: log}
}

// Submit valida y persiste la venta. salesRepID y salesRepName provienen de la
// sesión autenticada (claims del JWT), nunca del cuerpo de la petición.
func (uc *SubmitSaleUseCase) Submit(ctx context.Context, salesRepID, salesRepName string, in dto.SubmitSaleRequest) (*dto.SaleResponse, error) {
	if salesRepID == "" {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(in.CustomerAddress) == "" {
		return nil, domain.ErrInvalidInput
	}

	saleType := in.SaleType
	if saleType == "" {
		saleType = entity.SaleTypeNewService
	}
	if !entity.ValidSaleType(saleType) {
		return nil, domain.ErrInvalidInput
	}

	products, totalValue, totalPoints, err := buildSaleProducts(in.Products)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:              uuid.New().String(),
		SalesRepID:      salesRepID,
		SalesRepName:    salesRepName,
		ManagerID:       in.ManagerID,
		CustomerName:    in.CustomerName,
		CustomerAddress: strings.TrimSpace(in.CustomerAddress),
		CustomerPhone:   in.CustomerPhone,
		CustomerEmail:   in.CustomerEmail,
		SaleType:        saleType,
		Products:        products,
		TotalValue:      totalValue,
		TotalPoints:     totalPoints,
		Status:          entity.SaleStatusPending,
		Notes:           in.Notes,
		SaleDate:        now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Auto-aprobación: política explícita de configuración, no estado ambiente.
	if uc.cfg.AutoApprove {
		sale.Status = entity.SaleStatusApproved
		sale.ApprovedBy = "system"
		sale.ApproverName = "Auto-aprobación"
		sale.ApprovedAt = &now
	}

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	uc.notifySubmitted(ctx, sale)

	return toSaleResponse(sale), nil
}

// notifySubmitted emite las notificaciones de registro. Fire-and-forget: un
// fallo aquí se registra y se descarta, la venta ya quedó persistida.
func (uc *SubmitSaleUseCase) notifySubmitted(ctx context.Context, sale *entity.Sale) {
	meta := map[string]any{
		"sale_id":      sale.ID,
		"total_points": sale.TotalPoints,
	}

	if err := uc.notifier.Notify(ctx, sale.SalesRepID,
		entity.NotificationSaleSubmitted,
		"Venta registrada",
		"Tu venta en "+sale.CustomerAddress+" quedó registrada y pendiente de aprobación.",
		"/sales/"+sale.ID, meta,
	); err != nil {
		uc.log.Warn().Err(err).Str("sale_id", sale.ID).Msg("notificación al representante falló")
	}

	if sale.ManagerID != "" {
		if err := uc.notifier.Notify(ctx, sale.ManagerID,
			entity.NotificationSalePending,
			"Venta pendiente de aprobación",
			sale.SalesRepName+" registró una venta que espera tu revisión.",
			"/sales/"+sale.ID, meta,
		); err != nil {
			uc.log.Warn().Err(err).Str("sale_id", sale.ID).Msg("notificación al manager falló")
		}
	}
}
