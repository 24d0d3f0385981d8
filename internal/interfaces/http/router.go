package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comissoes-api/internal/application/analytics"
	"github.com/jhoicas/Comissoes-api/internal/application/auth"
	"github.com/jhoicas/Comissoes-api/internal/application/sales"
	"github.com/jhoicas/Comissoes-api/internal/application/usecase"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	SupplierUC  *usecase.SupplierUseCase
	RuleUC      *usecase.RuleUseCase
	ProductUC   *usecase.ProductUseCase
	ClientUC    *usecase.ClientUseCase
	QuoteUC     *sales.QuoteUseCase
	CreateSale  *sales.CreateSaleUseCase
	SaleQuery   *sales.QueryUseCase
	SalePDF     *sales.PDFUseCase
	ScheduleUC  *sales.ScheduleUseCase
	RankingUC   *analytics.RankingUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Log))

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token y rol conocido)
	protected := api.Group("/",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleRepresentante),
	)
	protected.Get("/me", authHandler.Me)
	protected.Put("/me", authHandler.UpdateMe)
	protected.Post("/me/password", authHandler.ChangePassword)

	// Pastas, reglas y productos
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	ruleHandler := NewRuleHandler(deps.RuleUC)
	productHandler := NewProductHandler(deps.ProductUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Post("/:id/rules", ruleHandler.Create)
	suppliers.Get("/:id/rules", ruleHandler.List)
	suppliers.Post("/:id/products", productHandler.Create)
	suppliers.Get("/:id/products", productHandler.List)
	protected.Delete("/rules/:ruleId", ruleHandler.Delete)
	protected.Get("/products/:id", productHandler.GetByID)
	protected.Put("/products/:id", productHandler.Update)

	// Clientes
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)

	// Ventas y parcelas
	saleHandler := NewSaleHandler(deps.QuoteUC, deps.CreateSale, deps.SaleQuery, deps.SalePDF)
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC)
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/quote", saleHandler.Quote)
	salesGroup.Post("/schedule/edit-date", scheduleHandler.EditDueDate)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/pdf", saleHandler.DownloadPDF)
	protected.Post("/schedule/notation", scheduleHandler.ParseNotation)

	// Analítica
	analyticsHandler := NewAnalyticsHandler(deps.RankingUC, deps.DashboardUC)
	analyticsGroup := protected.Group("/analytics")
	analyticsGroup.Get("/commission-ranking", analyticsHandler.GetCommissionRanking)
	analyticsGroup.Get("/dashboard", analyticsHandler.GetDashboard)
}
