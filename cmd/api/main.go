package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcastillo/ventas-pap-api/internal/application/analytics"
	"github.com/jcastillo/ventas-pap-api/internal/application/auth"
	"github.com/jcastillo/ventas-pap-api/internal/application/notification"
	"github.com/jcastillo/ventas-pap-api/internal/application/sales"
	infrapdf "github.com/jcastillo/ventas-pap-api/internal/infrastructure/pdf"
	"github.com/jcastillo/ventas-pap-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastillo/ventas-pap-api/internal/interfaces/http"
	"github.com/jcastillo/ventas-pap-api/pkg/config"
	"github.com/jcastillo/ventas-pap-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	saleRepo := postgres.NewSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)

	notificationUC := notification.NewUseCase(notificationRepo)
	submitSaleUC := sales.NewSubmitSaleUseCase(saleRepo, notificationUC, cfg.Sales, log)
	decideSaleUC := sales.NewDecideSaleUseCase(saleRepo, notificationUC, cfg.Sales, log)
	saleUC := sales.NewSaleUseCase(saleRepo)

	statsUC := analytics.NewStatsUseCase(saleRepo)
	leaderboardUC := analytics.NewLeaderboardUseCase(saleRepo, cfg.Sales.LeaderboardMaxLimit)
	dashboardUC := analytics.NewDashboardUseCase(statsUC, leaderboardUC)

	// PDF: versión imprimible del leaderboard para las oficinas
	reportGenerator := infrapdf.NewLeaderboardReportGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventas PAP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		SubmitSale:     submitSaleUC,
		DecideSale:     decideSaleUC,
		SaleUC:         saleUC,
		StatsUC:        statsUC,
		LeaderboardUC:  leaderboardUC,
		DashboardUC:    dashboardUC,
		NotificationUC: notificationUC,
		Report:         reportGenerator,
		OrgName:        cfg.App.Name,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
