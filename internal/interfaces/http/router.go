package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bikeshop-api/internal/application/auth"
	"github.com/jhoicas/bikeshop-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AccountUC *auth.AccountUseCase
	BikeUC    *usecase.BikeUseCase
	OrderUC   *usecase.OrderUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Cuentas (público)
	authHandler := NewAuthHandler(deps.AccountUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Catálogo y pedidos
	bikeHandler := NewBikeHandler(deps.BikeUC)
	api.Post("/create-bike", bikeHandler.Create)
	api.Get("/bikes/:id", bikeHandler.GetByID)

	orderHandler := NewOrderHandler(deps.OrderUC)
	api.Post("/create-order", orderHandler.Create)
	api.Get("/orders/:id", orderHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	api.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
}
