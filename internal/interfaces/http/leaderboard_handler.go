package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastillo/ventas-pap-api/internal/application/analytics"
	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
)

// ReportGenerator genera la versión imprimible (PDF) del leaderboard.
type ReportGenerator interface {
	Generate(ctx context.Context, orgName string, board *dto.LeaderboardResponse, dateLabel string) ([]byte, error)
}

// LeaderboardHandler expone el ranking y el resumen del dashboard (protegido).
type LeaderboardHandler struct {
	leaderboard *analytics.LeaderboardUseCase
	dashboard   *analytics.DashboardUseCase
	report      ReportGenerator
	orgName     string
}

// NewLeaderboardHandler construye el handler del leaderboard.
func NewLeaderboardHandler(leaderboard *analytics.LeaderboardUseCase, dashboard *analytics.DashboardUseCase, report ReportGenerator, orgName string) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard, dashboard: dashboard, report: report, orgName: orgName}
}

// Rank godoc
// @Summary      Leaderboard de ventas aprobadas
// @Tags         leaderboard
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "day, week, month, year"  default(month)
// @Param        metric  query  string  false  "totalPoints o totalSales"  default(totalPoints)
// @Param        limit   query  int     false  "Posiciones a devolver"  default(10)
// @Success      200  {object}  dto.LeaderboardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/leaderboard [get]
func (h *LeaderboardHandler) Rank(c *fiber.Ctx) error {
	out, err := h.leaderboard.Rank(c.Context(), c.Query("period"), c.Query("metric"), c.QueryInt("limit", 0))
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el leaderboard como PDF
// @Tags         leaderboard
// @Security     Bearer
// @Produce      application/pdf
// @Param        period  query  string  false  "day, week, month, year"  default(month)
// @Param        metric  query  string  false  "totalPoints o totalSales"  default(totalPoints)
// @Param        limit   query  int     false  "Posiciones a incluir"  default(10)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/leaderboard/export [get]
func (h *LeaderboardHandler) Export(c *fiber.Ctx) error {
	board, err := h.leaderboard.Rank(c.Context(), c.Query("period"), c.Query("metric"), c.QueryInt("limit", 0))
	if err != nil {
		return saleError(c, err)
	}
	pdfBytes, err := h.report.Generate(c.Context(), h.orgName, board, analytics.PeriodLabel(board.Period))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="leaderboard-`+board.Period+`.pdf"`)
	return c.Send(pdfBytes)
}

// DashboardSummary godoc
// @Summary      Resumen del dashboard (stats + top performers)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "day, week, month, year"  default(month)
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *LeaderboardHandler) DashboardSummary(c *fiber.Ctx) error {
	salesRepID := ""
	if GetRole(c) == entity.RoleSalesRep {
		salesRepID = GetUserID(c) // las stats del dashboard de un rep son las propias
	}
	out, err := h.dashboard.GetSummary(c.Context(), c.Query("period"), salesRepID)
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}
