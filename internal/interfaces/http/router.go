package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/auth"
	"github.com/jhoicas/Granja-api/internal/application/finance"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC             *auth.AuthUseCase
	CropUC             *usecase.CropUseCase
	ExpenseUC          *usecase.ExpenseUseCase
	FlockUC            *usecase.FlockUseCase
	LivestockUC        *usecase.LivestockUseCase
	LivestockExpenseUC *usecase.LivestockExpenseUseCase
	MedicalUC          *usecase.MedicalUseCase
	ProductionUC       *usecase.ProductionUseCase
	SaleUC             *usecase.SaleUseCase
	ProfitLossUC       *finance.ProfitLossUseCase
	PDFUC              *finance.PDFUseCase
	SummaryUC          *finance.SummaryUseCase
	LivestockReportUC  *finance.LivestockReportUseCase
	JWTSecret          string
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

	// Crops + gastos anidados (protegido)
	crops := protected.Group("/crops")
	cropHandler := NewCropHandler(deps.CropUC, deps.ExpenseUC)
	crops.Post("/", cropHandler.Create)
	crops.Get("/", cropHandler.List)
	crops.Get("/:id", cropHandler.GetByID)
	crops.Put("/:id", cropHandler.Update)
	crops.Delete("/:id", cropHandler.Delete)
	crops.Get("/:id/expenses", cropHandler.ListExpenses)
	crops.Post("/:id/expenses", cropHandler.CreateExpense)

	// Expenses (protegido; edición y borrado sueltos)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Flocks (protegido)
	flocks := protected.Group("/flocks")
	flockHandler := NewFlockHandler(deps.FlockUC)
	flocks.Post("/", flockHandler.Create)
	flocks.Get("/", flockHandler.List)
	flocks.Get("/:id", flockHandler.GetByID)
	flocks.Put("/:id", flockHandler.Update)
	flocks.Delete("/:id", flockHandler.Delete)

	// Livestock (protegido; clave en ruta: arete)
	livestock := protected.Group("/livestock")
	livestockHandler := NewLivestockHandler(deps.LivestockUC)
	livestock.Post("/", livestockHandler.Create)
	livestock.Get("/", livestockHandler.List)
	livestock.Get("/:tagId", livestockHandler.GetByTagID)
	livestock.Put("/:tagId", livestockHandler.Update)
	livestock.Delete("/:tagId", livestockHandler.Delete)

	// Livestock expenses (protegido)
	livestockExpenses := protected.Group("/livestock-expenses")
	livestockExpenseHandler := NewLivestockExpenseHandler(deps.LivestockExpenseUC)
	livestockExpenses.Post("/", livestockExpenseHandler.Create)
	livestockExpenses.Get("/", livestockExpenseHandler.List)
	livestockExpenses.Delete("/:id", livestockExpenseHandler.Delete)

	// Medical treatments (protegido)
	medical := protected.Group("/medical-treatments")
	medicalHandler := NewMedicalHandler(deps.MedicalUC)
	medical.Post("/", medicalHandler.Create)
	medical.Get("/", medicalHandler.List)
	medical.Delete("/:id", medicalHandler.Delete)

	// Production records (protegido)
	production := protected.Group("/production-records")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	production.Post("/", productionHandler.Create)
	production.Get("/", productionHandler.List)
	production.Delete("/:id", productionHandler.Delete)

	// Sales (protegido; escrituras transaccionales)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Delete("/:id", saleHandler.Delete)

	// Finance (protegido; reportes solo admin y contador)
	financeGroup := protected.Group("/finance", RequireRole(entity.RoleAdmin, entity.RoleContador))
	financeHandler := NewFinanceHandler(deps.ProfitLossUC, deps.PDFUC)
	financeGroup.Get("/profit-loss", financeHandler.GetProfitLoss)
	financeGroup.Get("/profit-loss/pdf", financeHandler.DownloadProfitLossPDF)
	financeGroup.Get("/roi-analysis", financeHandler.GetROIAnalysis)

	// Financial summaries (protegido)
	summaries := protected.Group("/financial-summary")
	summaryHandler := NewSummaryHandler(deps.SummaryUC)
	summaries.Get("/flocks", summaryHandler.GetFlockSummaries)
	summaries.Get("/animals", summaryHandler.GetAnimalSummaries)
	summaries.Get("/flocks/:flockId/metrics", summaryHandler.GetFlockMetrics)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportsHandler := NewReportsHandler(deps.LivestockReportUC)
	reports.Get("/livestock", reportsHandler.GetLivestockReport)
}
