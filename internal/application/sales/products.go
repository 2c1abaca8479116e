package sales

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
	"github.com/jcastillo/ventas-pap-api/internal/domain"
	"github.com/jcastillo/ventas-pap-api/internal/domain/catalog"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
)

// buildSaleProducts resuelve cada referencia de producto contra el catálogo y
// construye las líneas de la venta con totales calculados en servidor.
//
// Los puntos enviados por el cliente se descartan siempre: el único origen
// válido es el catálogo. El precio unitario sí puede venir del cliente (ofertas
// en puerta), con el precio de catálogo como valor por defecto.
func buildSaleProducts(inputs []dto.SaleProductInput) ([]entity.SaleProduct, decimal.Decimal, int, error) {
	if len(inputs) == 0 {
		return nil, decimal.Zero, 0, domain.ErrInvalidInput
	}

	products := make([]entity.SaleProduct, 0, len(inputs))
	totalValue := decimal.Zero
	totalPoints := 0

	for _, in := range inputs {
		if strings.TrimSpace(in.ProductID) == "" {
			return nil, decimal.Zero, 0, domain.ErrInvalidInput
		}
		plan := catalog.Get(in.ProductID)
		if plan == nil {
			return nil, decimal.Zero, 0, domain.ErrPlanNotFound
		}

		qty := in.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 0 {
			return nil, decimal.Zero, 0, domain.ErrInvalidInput
		}

		unitPrice := plan.Price
		if in.UnitPrice != nil && !in.UnitPrice.IsZero() {
			if in.UnitPrice.IsNegative() {
				return nil, decimal.Zero, 0, domain.ErrInvalidInput
			}
			unitPrice = *in.UnitPrice
		}
		totalPrice := unitPrice.Mul(decimal.NewFromInt(int64(qty)))

		p := entity.SaleProduct{
			ProductID:   plan.ID,
			ProductName: plan.Name,
			Company:     plan.Company,
			Quantity:    qty,
			UnitPrice:   unitPrice,
			TotalPrice:  totalPrice,
			Points:      plan.Points,
		}
		products = append(products, p)
		totalValue = totalValue.Add(totalPrice)
		totalPoints += p.Points
	}

	return products, totalValue, totalPoints, nil
}

// toSaleResponse mapea la entidad al DTO de salida.
func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	products := make([]dto.SaleProductResponse, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, dto.SaleProductResponse{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Company:     p.Company,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
			TotalPrice:  p.TotalPrice,
			Points:      p.Points,
		})
	}
	return &dto.SaleResponse{
		ID:              s.ID,
		SalesRepID:      s.SalesRepID,
		SalesRepName:    s.SalesRepName,
		ManagerID:       s.ManagerID,
		CustomerName:    s.CustomerName,
		CustomerAddress: s.CustomerAddress,
		CustomerPhone:   s.CustomerPhone,
		CustomerEmail:   s.CustomerEmail,
		SaleType:        s.SaleType,
		Products:        products,
		TotalValue:      s.TotalValue,
		TotalPoints:     s.TotalPoints,
		Status:          s.Status,
		ApprovedBy:      s.ApprovedBy,
		ApproverName:    s.ApproverName,
		ApprovedAt:      s.ApprovedAt,
		RejectionReason: s.RejectionReason,
		Notes:           s.Notes,
		SaleDate:        s.SaleDate,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
