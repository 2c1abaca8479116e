package sales

import (
	"context"
	"strings"
	"time"

	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
	"github.com/jcastillo/ventas-pap-api/internal/domain"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
	"github.com/jcastillo/ventas-pap-api/internal/domain/repository"
)

const defaultListLimit = 50

// SaleUseCase operaciones de lectura y administración sobre ventas: listado,
// detalle, edición administrativa completa y borrado.
//
// La edición administrativa es un override grueso fuera de la máquina de
// aprobación: puede tocar estado directamente (incluido cancelled) y recalcula
// totales si cambian los productos.
type SaleUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo}
}

// List lista ventas filtradas por estado y/o representante, ordenadas por fecha
// de creación descendente.
//
// Se empuja a la consulta a lo sumo UN filtro de igualdad; el resto se aplica en
// memoria para no exigir índices compuestos al almacén (fetch broad, filter
// narrow). Costo: escaneo por petición — aceptable a los volúmenes del negocio
// (miles de ventas, no millones).
func (uc *SaleUseCase) List(ctx context.Context, status, salesRepID string, limit int) (*dto.SaleListResponse, error) {
	if status != "" && !entity.ValidSaleStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	var (
		sales []*entity.Sale
		err   error
	)
	switch {
	case salesRepID != "":
		sales, err = uc.saleRepo.ListBySalesRep(ctx, salesRepID)
	case status != "":
		sales, err = uc.saleRepo.ListByStatus(ctx, status)
	default:
		sales, err = uc.saleRepo.ListRecent(ctx, limit)
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		if salesRepID != "" && status != "" && s.Status != status {
			continue
		}
		items = append(items, *toSaleResponse(s))
		if len(items) >= limit {
			break
		}
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene una venta por ID.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// AdminUpdate sobrescribe campos de la venta (solo admin). Si cambian los
// productos, los totales se recalculan desde el catálogo; el estado puede
// fijarse directamente, incluido cancelled.
func (uc *SaleUseCase) AdminUpdate(ctx context.Context, id string, in dto.AdminUpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	if in.CustomerName != nil {
		sale.CustomerName = *in.CustomerName
	}
	if in.CustomerAddress != nil {
		if strings.TrimSpace(*in.CustomerAddress) == "" {
			return nil, domain.ErrInvalidInput
		}
		sale.CustomerAddress = strings.TrimSpace(*in.CustomerAddress)
	}
	if in.CustomerPhone != nil {
		sale.CustomerPhone = *in.CustomerPhone
	}
	if in.CustomerEmail != nil {
		sale.CustomerEmail = *in.CustomerEmail
	}
	if in.SaleType != nil {
		if !entity.ValidSaleType(*in.SaleType) {
			return nil, domain.ErrInvalidInput
		}
		sale.SaleType = *in.SaleType
	}
	if in.Notes != nil {
		sale.Notes = *in.Notes
	}
	if in.Status != nil {
		if !entity.ValidSaleStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		sale.Status = *in.Status
	}
	if len(in.Products) > 0 {
		products, totalValue, totalPoints, err := buildSaleProducts(in.Products)
		if err != nil {
			return nil, err
		}
		sale.Products = products
		sale.TotalValue = totalValue
		sale.TotalPoints = totalPoints
	}

	sale.UpdatedAt = time.Now()
	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Delete elimina una venta (operación administrativa, solo admin).
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.saleRepo.Delete(ctx, id)
}
