package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una venta.
// pending es el estado inicial; approved y rejected son terminales para el flujo
// de aprobación; cancelled solo es alcanzable vía la edición administrativa.
const (
	SaleStatusPending   = "pending"
	SaleStatusApproved  = "approved"
	SaleStatusRejected  = "rejected"
	SaleStatusCancelled = "cancelled"
)

// Tipos de venta.
const (
	SaleTypeNewService = "new_service"
	SaleTypeUpgrade    = "upgrade"
	SaleTypeAddOn      = "add_on"
	SaleTypeRenewal    = "renewal"
)

// ValidSaleStatus indica si s es uno de los estados conocidos.
func ValidSaleStatus(s string) bool {
	switch s {
	case SaleStatusPending, SaleStatusApproved, SaleStatusRejected, SaleStatusCancelled:
		return true
	}
	return false
}

// ValidSaleType indica si t es uno de los tipos conocidos.
func ValidSaleType(t string) bool {
	switch t {
	case SaleTypeNewService, SaleTypeUpgrade, SaleTypeAddOn, SaleTypeRenewal:
		return true
	}
	return false
}

// SaleProduct es un plan del catálogo adjunto a una venta concreta.
// Nombre, compañía, precio y puntos son una copia tomada en el momento del registro:
// una edición posterior del catálogo no altera ventas históricas.
type SaleProduct struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Company     string          `json:"company"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"` // siempre unit_price × quantity
	Points      int             `json:"points"`      // copiados de Plan.Points
}

// Sale representa una venta registrada por un representante.
// TotalValue y TotalPoints se recalculan siempre en servidor a partir de Products;
// nunca se aceptan tal cual del cliente.
type Sale struct {
	ID              string
	SalesRepID      string // creador, inmutable después de crear
	SalesRepName    string // denormalizado para leaderboard
	ManagerID       string // opcional: destinatario de la notificación de aprobación
	CustomerName    string
	CustomerAddress string // requerido, nunca vacío
	CustomerPhone   string
	CustomerEmail   string
	SaleType        string
	Products        []SaleProduct // al menos uno
	TotalValue      decimal.Decimal
	TotalPoints     int
	Status          string
	ApprovedBy      string
	ApproverName    string
	ApprovedAt      *time.Time
	RejectionReason string
	Notes           string
	SaleDate        time.Time // fecha de negocio de la venta
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
