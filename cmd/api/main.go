package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/Comissoes-api/internal/application/analytics"
	"github.com/jhoicas/Comissoes-api/internal/application/auth"
	"github.com/jhoicas/Comissoes-api/internal/application/sales"
	"github.com/jhoicas/Comissoes-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Comissoes-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Comissoes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Comissoes-api/internal/interfaces/http"
	"github.com/jhoicas/Comissoes-api/pkg/config"
	"github.com/jhoicas/Comissoes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("intervalo_default", cfg.Schedule.DefaultIntervalDays).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("aplicadas", applied).Msg("migraciones al día")
	}

	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	ruleRepo := postgres.NewCommissionRuleRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	ruleUC := usecase.NewRuleUseCase(txRunner, supplierRepo, ruleRepo)
	productUC := usecase.NewProductUseCase(productRepo, supplierRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)

	interval := cfg.Schedule.DefaultIntervalDays
	quoteUC := sales.NewQuoteUseCase(supplierRepo, productRepo, interval, log.Named("quote"))
	createSaleUC := sales.NewCreateSaleUseCase(quoteUC, txRunner, clientRepo)
	saleQueryUC := sales.NewQueryUseCase(saleRepo)
	scheduleUC := sales.NewScheduleUseCase(interval, log.Named("schedule"))

	// PDF: extracto de parcelas de una venta
	statementPDFUC := sales.NewPDFUseCase(
		saleRepo, supplierRepo, clientRepo, productRepo, infrapdf.NewStatementGenerator(),
	)

	rankingUC := appanalytics.NewRankingUseCase(analyticsRepo, cfg.Ranking.TopN)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, cfg.Ranking.TopN)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.TraceMiddleware())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Log:         log.Named("http"),
		AuthUC:      authUC,
		UserUC:      userUC,
		SupplierUC:  supplierUC,
		RuleUC:      ruleUC,
		ProductUC:   productUC,
		ClientUC:    clientUC,
		QuoteUC:     quoteUC,
		CreateSale:  createSaleUC,
		SaleQuery:   saleQueryUC,
		SalePDF:     statementPDFUC,
		ScheduleUC:  scheduleUC,
		RankingUC:   rankingUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
