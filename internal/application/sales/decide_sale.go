package sales

import (
	"context"
	"strings"
	"time"

	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
	"github.com/jcastillo/ventas-pap-api/internal/domain"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
	"github.com/jcastillo/ventas-pap-api/internal/domain/repository"
	"github.com/jcastillo/ventas-pap-api/pkg/config"
	"github.com/jcastillo/ventas-pap-api/pkg/logger"
)

// DecideSaleUseCase ejecuta la transición pending → approved/rejected.
//
// La escritura es condicional (solo si el estado sigue siendo pending), de modo
// que dos decisiones casi simultáneas sobre la misma venta no se pisan: la
// segunda recibe ErrConflict en lugar de sobrescribir a la primera.
type DecideSaleUseCase struct {
	saleRepo repository.SaleRepository
	notifier Notifier
	cfg      config.SalesConfig
	log      *logger.Logger
}

// NewDecideSaleUseCase construye el caso de uso.
func NewDecideSaleUseCase(saleRepo repository.SaleRepository, notifier Notifier, cfg config.SalesConfig, log *logger.Logger) *DecideSaleUseCase {
	return &DecideSaleUseCase{saleRepo: saleRepo, notifier: notifier, cfg: cfg, log: log}
}

// Decide aplica la decisión del aprobador. approverID y approverName provienen
// de la sesión autenticada. Rechazar exige motivo cuando la política lo pide.
func (uc *DecideSaleUseCase) Decide(ctx context.Context, approverID, approverName string, in dto.DecideSaleRequest) (*dto.SaleResponse, error) {
	if in.SaleID == "" || approverID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != entity.SaleStatusApproved && in.Status != entity.SaleStatusRejected {
		return nil, domain.ErrInvalidInput
	}
	reason := strings.TrimSpace(in.RejectionReason)
	if in.Status == entity.SaleStatusRejected && reason == "" && uc.cfg.RejectionReasonRequired {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == entity.SaleStatusApproved {
		reason = "" // una aprobación nunca guarda motivo de rechazo
	}

	d := repository.DecisionUpdate{
		Status:          in.Status,
		ApprovedBy:      approverID,
		ApproverName:    approverName,
		ApprovedAt:      time.Now(),
		RejectionReason: reason,
	}
	applied, err := uc.saleRepo.ApplyDecision(ctx, in.SaleID, d)
	if err != nil {
		return nil, err
	}
	if !applied {
		// La venta no estaba pending: distinguir inexistente de estado terminal.
		sale, err := uc.saleRepo.GetByID(ctx, in.SaleID)
		if err != nil {
			return nil, err
		}
		if sale == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrConflict
	}

	sale, err := uc.saleRepo.GetByID(ctx, in.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	uc.notifyDecision(ctx, sale)

	return toSaleResponse(sale), nil
}

// notifyDecision avisa al representante del resultado. Fire-and-forget.
func (uc *DecideSaleUseCase) notifyDecision(ctx context.Context, sale *entity.Sale) {
	meta := map[string]any{
		"sale_id":      sale.ID,
		"total_points": sale.TotalPoints,
	}

	ntype := entity.NotificationSaleApproved
	title := "Venta aprobada"
	message := "Tu venta en " + sale.CustomerAddress + " fue aprobada. ¡Sumaste puntos!"
	if sale.Status == entity.SaleStatusRejected {
		ntype = entity.NotificationSaleRejected
		title = "Venta rechazada"
		message = "Tu venta en " + sale.CustomerAddress + " fue rechazada."
		if sale.RejectionReason != "" {
			message += " Motivo: " + sale.RejectionReason
		}
	}

	if err := uc.notifier.Notify(ctx, sale.SalesRepID, ntype, title, message, "/sales/"+sale.ID, meta); err != nil {
		uc.log.Warn().Err(err).Str("sale_id", sale.ID).Msg("notificación de decisión falló")
	}
}
