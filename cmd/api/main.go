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

	"github.com/jhoicas/tutu-catalog/internal/application/auth"
	"github.com/jhoicas/tutu-catalog/internal/application/catalog"
	"github.com/jhoicas/tutu-catalog/internal/infrastructure/postgres"
	"github.com/jhoicas/tutu-catalog/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/tutu-catalog/internal/interfaces/http"
	"github.com/jhoicas/tutu-catalog/pkg/config"
	"github.com/jhoicas/tutu-catalog/pkg/logger"
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

	imageStorage, err := storage.NewLocalImageStorage(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de imágenes")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	sizeRepo := postgres.NewSizeStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	uploadUC := catalog.NewUploadUseCase(txRunner)
	queryUC := catalog.NewQueryUseCase(productRepo)
	detailUC := catalog.NewDetailUseCase(productRepo, sizeRepo)
	deleteUC := catalog.NewDeleteUseCase(txRunner, productRepo)
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
		Title:    "Tutu Catalog API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Las imágenes subidas se sirven estáticas, como en la galería original
	app.Static("/images", cfg.Uploads.Dir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		QueryUC:   queryUC,
		DetailUC:  detailUC,
		UploadUC:  uploadUC,
		DeleteUC:  deleteUC,
		Storage:   imageStorage,
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
