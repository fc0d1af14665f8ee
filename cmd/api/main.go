package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/bikeshop-api/docs"
	"github.com/jhoicas/bikeshop-api/internal/application/auth"
	"github.com/jhoicas/bikeshop-api/internal/application/usecase"
	"github.com/jhoicas/bikeshop-api/internal/bootstrap"
	httpRouter "github.com/jhoicas/bikeshop-api/internal/interfaces/http"
	"github.com/jhoicas/bikeshop-api/pkg/config"
	"github.com/jhoicas/bikeshop-api/pkg/logger"
)

// @title                       Bike Shop API
// @version                     1.0
// @description                 Registro y login de usuarios, catálogo de bicicletas y pedidos.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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
		Str("store", cfg.Store.Driver).
		Str("notifier", cfg.Notifier.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	stores, err := bootstrap.OpenStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	notifier, closeNotifier, err := bootstrap.NewNotifier(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("notificador")
	}

	accountUC := auth.NewAccountUseCase(stores.Users, notifier, auth.Config{
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		NotifyTimeout: cfg.Notifier.Timeout,
	}, log)
	bikeUC := usecase.NewBikeUseCase(stores.Bikes, log)
	orderUC := usecase.NewOrderUseCase(stores.Orders, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bike Shop API",
	}))
	app.Get("/api-docs", func(c *fiber.Ctx) error {
		return c.Redirect("/docs", fiber.StatusMovedPermanently)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AccountUC: accountUC,
		BikeUC:    bikeUC,
		OrderUC:   orderUC,
		JWTSecret: cfg.JWT.Secret,
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
	if err := closeNotifier(); err != nil {
		log.Error().Err(err).Msg("cierre del notificador")
	}
	if err := stores.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre del almacenamiento")
	}

	log.Info().Msg("aplicación detenida")
}
