package repository

import (
	"context"
	"time"

	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
)

// DecisionUpdate campos que escribe el flujo de aprobación sobre una venta pending.
type DecisionUpdate struct {
	Status          string // approved | rejected
	ApprovedBy      string
	ApproverName    string
	ApprovedAt      time.Time
	RejectionReason string // solo para rejected
}

// SaleRepository define el puerto de persistencia para Sale.
//
// Los métodos List* aplican a lo sumo UN filtro de igualdad en la consulta; el
// filtrado por fecha u otros campos se hace en memoria en los casos de uso para
// no exigir índices compuestos al almacén.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	ListAll(ctx context.Context) ([]*entity.Sale, error)
	ListBySalesRep(ctx context.Context, salesRepID string) ([]*entity.Sale, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Sale, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error)
	// ApplyDecision ejecuta la transición pending → approved/rejected de forma
	// condicional (solo si el estado actual sigue siendo pending). Devuelve false
	// si no se aplicó; el llamador distingue not-found de conflicto.
	ApplyDecision(ctx context.Context, saleID string, d DecisionUpdate) (bool, error)
	// Update sobrescribe el registro completo (edición administrativa).
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id string) error
}
