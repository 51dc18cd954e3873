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

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/auth"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/catalog"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/inventory"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/orders"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/users"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/infrastructure/notify"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/infrastructure/postgres"
	infraredis "github.com/Rubennaldos/pecaditos-web-sub000/internal/infrastructure/redis"
	httpRouter "github.com/Rubennaldos/pecaditos-web-sub000/internal/interfaces/http"
	"github.com/Rubennaldos/pecaditos-web-sub000/pkg/config"
	"github.com/Rubennaldos/pecaditos-web-sub000/pkg/logger"
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

	orderRepo := postgres.NewOrderRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockTx := postgres.NewTxRunner(pool)
	orderTx := postgres.NewOrderTxRunner(pool)

	// Caché de catálogo: opcional, sin REDIS_URL el listado va directo a
	// la DB.
	var catalogCache catalog.Cache
	if cfg.Redis.URL != "" {
		redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		catalogCache = infraredis.NewCatalogCache(redisClient, cfg.Redis.TTLMinutos, log)
	} else {
		log.Warn().Msg("REDIS_URL vacío: catálogo sin caché")
	}

	sla := orders.SLAConfig{
		PendienteHoras:           cfg.SLA.PendienteHoras,
		PreparacionHoras:         cfg.SLA.PreparacionHoras,
		PreparacionTrackingHoras: cfg.SLA.PreparacionTrackingHoras,
		ListoHoras:               cfg.SLA.ListoHoras,
		UrgentePendiente:         cfg.SLA.UrgentePendiente,
		UrgentePreparacion:       cfg.SLA.UrgentePreparacion,
		UrgenteTracking:          cfg.SLA.UrgenteTracking,
	}

	orderUC := orders.NewOrderUseCase(orderRepo, orderTx, sla, nil)
	stockUC := inventory.NewStockUseCase(stockTx, itemRepo, movRepo, notify.NewLogNotifier(log), nil)
	catalogUC := catalog.NewCatalogUseCase(productRepo, catalogCache)
	userUC := users.NewUserUseCase(userRepo)
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
		Title:    "Pecaditos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		OrderUC:   orderUC,
		StockUC:   stockUC,
		CatalogUC: catalogUC,
		UserUC:    userUC,
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

	log.Info().Msg("aplicación detenida")
}
