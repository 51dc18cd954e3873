package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/auth"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/catalog"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/inventory"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/orders"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/users"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	OrderUC   *orders.OrderUseCase
	StockUC   *inventory.StockUseCase
	CatalogUC *catalog.CatalogUseCase
	UserUC    *users.UserUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Lo público va antes del grupo
// protegido: storefront, seguimiento de pedido y login no requieren
// token.
func Router(app *fiber.App, deps RouterDeps) {
	validate := validator.New()

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, validate)
	api.Post("/auth/login", authHandler.Login)

	// Catálogo del storefront (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/catalog", catalogHandler.Retail)

	// Seguimiento de pedido (público, es el link que recibe el cliente)
	orderHandler := NewOrderHandler(deps.OrderUC, validate)
	api.Get("/orders/:id/tracking", orderHandler.GetTracking)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Portal mayorista (protegido, módulo de clientes)
	protected.Get("/catalog/wholesale", RequireModule("clients-access"), catalogHandler.Wholesale)

	// Panel de pedidos (protegido por módulo)
	ordersGroup := protected.Group("/orders", RequireModule("orders-admin"))
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Patch("/:id/status", orderHandler.ChangeStatus)

	// Almacén / producción (protegido por módulo)
	inventoryHandler := NewInventoryHandler(deps.StockUC, validate)
	invGroup := protected.Group("/inventory", RequireModule("production-admin"))
	invGroup.Get("/items", inventoryHandler.ListItems)
	invGroup.Put("/items/:id/stock", inventoryHandler.AdjustStock)
	invGroup.Post("/items/:id/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/items/:id/movements", inventoryHandler.ListMovements)

	// Administración de usuarios (el caso de uso exige rol admin)
	userHandler := NewUserHandler(deps.UserUC, validate)
	protected.Put("/users/:id/modules", userHandler.UpdateModules)
}
