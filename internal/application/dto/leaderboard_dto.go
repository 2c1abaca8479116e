package dto

// Métricas de ordenamiento del leaderboard.
const (
	MetricTotalPoints = "totalPoints"
	MetricTotalSales  = "totalSales"
)

// LeaderboardEntry posición de un representante en el ranking de la ventana.
// Derivado, no persistido: solo contribuyen ventas approved con sale_date dentro
// de la ventana pedida.
type LeaderboardEntry struct {
	Rank         int    `json:"rank"` // 1-based, denso en orden de clasificación
	SalesRepID   string `json:"sales_rep_id"`
	SalesRepName string `json:"sales_rep_name"`
	TotalSales   int    `json:"total_sales"`
	TotalPoints  int    `json:"total_points"`
}

// LeaderboardResponse respuesta de GET /api/leaderboard.
type LeaderboardResponse struct {
	Period  string             `json:"period"`
	Metric  string             `json:"metric"`
	Entries []LeaderboardEntry `json:"entries"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Combina el snapshot de stats del período con el top-5 del leaderboard.
type DashboardSummaryDTO struct {
	Stats         StatsSnapshot      `json:"stats"`
	TopPerformers []LeaderboardEntry `json:"top_performers"`
	DateLabel     string             `json:"date_label"` // ej: "Agosto 2026"
}
