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

	"github.com/jhoicas/Granja-api/internal/application/auth"
	"github.com/jhoicas/Granja-api/internal/application/finance"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Granja-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Granja-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Granja-api/internal/interfaces/http"
	"github.com/jhoicas/Granja-api/pkg/config"
	"github.com/jhoicas/Granja-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	cropRepo := postgres.NewCropRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	flockRepo := postgres.NewFlockRepository(pool)
	livestockRepo := postgres.NewLivestockRepository(pool)
	livestockExpenseRepo := postgres.NewLivestockExpenseRepository(pool)
	medicalRepo := postgres.NewMedicalTreatmentRepository(pool)
	productionRepo := postgres.NewProductionRecordRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)
	summaryRepo := postgres.NewSummaryRepository(pool)
	reportRepo := postgres.NewLivestockReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	cropUC := usecase.NewCropUseCase(cropRepo, txRunner)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, cropRepo, txRunner)
	flockUC := usecase.NewFlockUseCase(flockRepo)
	livestockUC := usecase.NewLivestockUseCase(livestockRepo, flockRepo)
	livestockExpenseUC := usecase.NewLivestockExpenseUseCase(livestockExpenseRepo, flockRepo)
	medicalUC := usecase.NewMedicalUseCase(medicalRepo, livestockRepo)
	productionUC := usecase.NewProductionUseCase(productionRepo, flockRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, livestockRepo, txRunner)
	profitLossUC := finance.NewProfitLossUseCase(financeRepo)
	summaryUC := finance.NewSummaryUseCase(summaryRepo)
	livestockReportUC := finance.NewLivestockReportUseCase(reportRepo)

	// PDF: estado de pérdidas y ganancias descargable
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	pdfUC := finance.NewPDFUseCase(profitLossUC, pdfGenerator)

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
		Title:    "Granja Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:             authUC,
		CropUC:             cropUC,
		ExpenseUC:          expenseUC,
		FlockUC:            flockUC,
		LivestockUC:        livestockUC,
		LivestockExpenseUC: livestockExpenseUC,
		MedicalUC:          medicalUC,
		ProductionUC:       productionUC,
		SaleUC:             saleUC,
		ProfitLossUC:       profitLossUC,
		PDFUC:              pdfUC,
		SummaryUC:          summaryUC,
		LivestockReportUC:  livestockReportUC,
		JWTSecret:          cfg.JWT.Secret,
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
