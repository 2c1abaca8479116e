package dto

import "github.com/shopspring/decimal"

// StatsSnapshot respuesta de GET /api/sales/stats.
// Proyección derivada, no persistida: se recalcula en cada petición sobre la
// ventana pedida (day, week, month, year).
type StatsSnapshot struct {
	Period         string          `json:"period"`
	TotalSales     int             `json:"total_sales"`
	TotalValue     decimal.Decimal `json:"total_value"`
	TotalPoints    int             `json:"total_points"`
	PendingCount   int             `json:"pending_count"`
	ApprovedCount  int             `json:"approved_count"`
	RejectedCount  int             `json:"rejected_count"`
	ApprovedPoints int             `json:"approved_points"` // puntos solo de ventas approved

	// Deltas porcentuales contra el período calendario inmediatamente anterior,
	// redondeados a un decimal. Convención: anterior=0 y actual>0 → 100;
	// ambos 0 → 0.
	SalesChange  decimal.Decimal `json:"sales_change"`
	PointsChange decimal.Decimal `json:"points_change"`
}
