package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastillo/ventas-pap-api/internal/application/analytics"
	"github.com/jcastillo/ventas-pap-api/internal/application/auth"
	"github.com/jcastillo/ventas-pap-api/internal/application/notification"
	"github.com/jcastillo/ventas-pap-api/internal/application/sales"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	SubmitSale     *sales.SubmitSaleUseCase
	DecideSale     *sales.DecideSaleUseCase
	SaleUC         *sales.SaleUseCase
	StatsUC        *analytics.StatsUseCase
	LeaderboardUC  *analytics.LeaderboardUseCase
	DashboardUC    *analytics.DashboardUseCase
	NotificationUC *notification.UseCase
	Report         ReportGenerator
	OrgName        string
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de planes (protegido, solo lectura)
	plans := protected.Group("/plans")
	planHandler := NewPlanHandler()
	plans.Get("/", planHandler.List)
	plans.Get("/:id", planHandler.GetByID)

	// Ventas (protegido). Las rutas fijas van antes que /:id.
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SubmitSale, deps.DecideSale, deps.SaleUC, deps.StatsUC)
	salesGroup.Post("/", RequirePermission(entity.PermSalesCreate), saleHandler.Submit)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/stats", saleHandler.Stats)
	salesGroup.Post("/approve", RequirePermission(entity.PermSalesApprove), saleHandler.Decide)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", RequirePermission(entity.PermSalesEdit), saleHandler.AdminUpdate)
	salesGroup.Delete("/:id", RequirePermission(entity.PermSalesDelete), saleHandler.Delete)

	// Leaderboard y dashboard (protegido)
	leaderboardHandler := NewLeaderboardHandler(deps.LeaderboardUC, deps.DashboardUC, deps.Report, deps.OrgName)
	board := protected.Group("/leaderboard", RequirePermission(entity.PermLeaderboardView))
	board.Get("/", leaderboardHandler.Rank)
	board.Get("/export", leaderboardHandler.Export)
	protected.Get("/dashboard/summary", leaderboardHandler.DashboardSummary)

	// Notificaciones del usuario autenticado (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
}
