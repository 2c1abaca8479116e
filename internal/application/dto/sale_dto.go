package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleProductInput referencia a un plan dentro de una venta nueva.
// Points NO se acepta del cliente: los puntos se derivan siempre del catálogo
// en servidor (medida anti-trampas); cualquier valor enviado aquí se descarta.
type SaleProductInput struct {
	ProductID string           `json:"product_id"`
	Quantity  int              `json:"quantity"`             // 0 → 1
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"` // nil/0 → precio del catálogo
	Points    int              `json:"points,omitempty"`     // ignorado en servidor
}

// SubmitSaleRequest cuerpo de POST /api/sales.
type SubmitSaleRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerAddress string             `json:"customer_address"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   string             `json:"customer_email"`
	SaleType        string             `json:"sale_type"` // vacío → new_service
	ManagerID       string             `json:"manager_id"`
	Notes           string             `json:"notes"`
	Products        []SaleProductInput `json:"products"`
}

// DecideSaleRequest cuerpo de POST /api/sales/approve.
type DecideSaleRequest struct {
	SaleID          string `json:"sale_id"`
	Status          string `json:"status"` // approved | rejected
	RejectionReason string `json:"rejection_reason,omitempty"`
}

// AdminUpdateSaleRequest edición administrativa completa (PUT /api/sales/:id).
// Sobrescribe campos de cliente, tipo, notas, productos (recalculando totales) y
// estado directamente, incluido cancelled. No pasa por la máquina de aprobación.
type AdminUpdateSaleRequest struct {
	CustomerName    *string            `json:"customer_name,omitempty"`
	CustomerAddress *string            `json:"customer_address,omitempty"`
	CustomerPhone   *string            `json:"customer_phone,omitempty"`
	CustomerEmail   *string            `json:"customer_email,omitempty"`
	SaleType        *string            `json:"sale_type,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
	Status          *string            `json:"status,omitempty"`
	Products        []SaleProductInput `json:"products,omitempty"`
}

// SaleProductResponse línea de producto en una venta persistida.
type SaleProductResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Company     string          `json:"company"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Points      int             `json:"points"`
}

// SaleResponse una venta completa con totales calculados en servidor.
type SaleResponse struct {
	ID              string                `json:"id"`
	SalesRepID      string                `json:"sales_rep_id"`
	SalesRepName    string                `json:"sales_rep_name"`
	ManagerID       string                `json:"manager_id,omitempty"`
	CustomerName    string                `json:"customer_name,omitempty"`
	CustomerAddress string                `json:"customer_address"`
	CustomerPhone   string                `json:"customer_phone,omitempty"`
	CustomerEmail   string                `json:"customer_email,omitempty"`
	SaleType        string                `json:"sale_type"`
	Products        []SaleProductResponse `json:"products"`
	TotalValue      decimal.Decimal       `json:"total_value"`
	TotalPoints     int                   `json:"total_points"`
	Status          string                `json:"status"`
	ApprovedBy      string                `json:"approved_by,omitempty"`
	ApproverName    string                `json:"approver_name,omitempty"`
	ApprovedAt      *time.Time            `json:"approved_at,omitempty"`
	RejectionReason string                `json:"rejection_reason,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	SaleDate        time.Time             `json:"sale_date"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// SaleListResponse listado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
