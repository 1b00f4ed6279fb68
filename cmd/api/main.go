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

	"github.com/sekolahku/inventaris-api/internal/application/auth"
	"github.com/sekolahku/inventaris-api/internal/application/requests"
	"github.com/sekolahku/inventaris-api/internal/application/usecase"
	"github.com/sekolahku/inventaris-api/internal/infrastructure/postgres"
	"github.com/sekolahku/inventaris-api/internal/infrastructure/redisnotify"
	httpRouter "github.com/sekolahku/inventaris-api/internal/interfaces/http"
	"github.com/sekolahku/inventaris-api/pkg/config"
	"github.com/sekolahku/inventaris-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	consumableRepo := postgres.NewConsumableRequestRepository(pool)
	borrowRepo := postgres.NewBorrowRequestRepository(pool)
	returnRepo := postgres.NewReturnRequestRepository(pool)
	logRepo := postgres.NewTransitionLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	var notifier requests.Notifier = requests.NopNotifier{}
	if cfg.Redis.Addr != "" {
		rn, err := redisnotify.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.Channel, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Redis connection")
		}
		defer rn.Close()
		notifier = rn
	}

	requestUC := requests.NewUseCase(txRunner, itemRepo, consumableRepo, borrowRepo, returnRepo, logRepo, notifier)
	itemUC := usecase.NewItemUseCase(itemRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	reportUC := usecase.NewReportUseCase(itemRepo, borrowRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventaris Sekolah API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ItemUC:    itemUC,
		UserUC:    userUC,
		ReportUC:  reportUC,
		RequestUC: requestUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
