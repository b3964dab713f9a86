package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/servusapp/servus-api/internal/application/auth"
	"github.com/servusapp/servus-api/internal/application/finance"
	"github.com/servusapp/servus-api/internal/application/orders"
	"github.com/servusapp/servus-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	CustomerUC      *usecase.CustomerUseCase
	CatalogUC       *usecase.CatalogUseCase
	ProfileUC       *usecase.ProfileUseCase
	CreateOrderUC   *orders.CreateOrderUseCase
	OrderUC         *orders.UseCase
	OrderPDFUC      *orders.PDFUseCase
	FinanceUC       *finance.UseCase
	JWTSecret       string
	SupportWhatsApp string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/verify", authHandler.VerifyEmail)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Catálogo de serviços e peças
	catalog := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Post("/", catalogHandler.Create)
	catalog.Get("/", catalogHandler.List)
	catalog.Delete("/:id", catalogHandler.Delete)

	// Ordens de serviço
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrderUC, deps.OrderUC, deps.OrderPDFUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Delete("/:id", orderHandler.Delete)
	ordersGroup.Post("/:id/advance", orderHandler.AdvanceStatus)
	ordersGroup.Post("/:id/signature", orderHandler.CollectSignature)
	ordersGroup.Post("/:id/photos", orderHandler.AddPhoto)
	ordersGroup.Delete("/:id/photos/:photoId", orderHandler.RemovePhoto)
	ordersGroup.Get("/:id/pdf", orderHandler.DownloadPDF)

	// Perfil de negócio + assinatura
	profileHandler := NewProfileHandler(deps.ProfileUC, deps.SupportWhatsApp)
	profile := protected.Group("/profile")
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)
	profile.Post("/logo", profileHandler.UploadLogo)
	protected.Get("/subscription/link", profileHandler.SubscriptionLink)

	// Financeiro
	financeGroup := protected.Group("/finance")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	financeGroup.Get("/summary", financeHandler.MonthSummary)
	financeGroup.Get("/home", financeHandler.HomeSummary)
}
