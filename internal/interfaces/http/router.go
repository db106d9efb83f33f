package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tutu-catalog/internal/application/auth"
	"github.com/jhoicas/tutu-catalog/internal/application/catalog"
	"github.com/jhoicas/tutu-catalog/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	QueryUC   *catalog.QueryUseCase
	DetailUC  *catalog.DetailUseCase
	UploadUC  *catalog.UploadUseCase
	DeleteUC  *catalog.DeleteUseCase
	Storage   catalog.ImageStorage
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (público: la galería no requiere sesión)
	catalogGroup := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.QueryUC, deps.DetailUC)
	catalogGroup.Get("/", catalogHandler.List)
	catalogGroup.Get("/types", catalogHandler.Types)
	catalogGroup.Get("/:id", catalogHandler.Detail)

	// Escritura del catálogo (requiere Bearer Token con rol admin)
	products := api.Group("/products",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin),
	)
	productHandler := NewProductHandler(deps.UploadUC, deps.DeleteUC, deps.Storage)
	products.Post("/", productHandler.Upload)
	products.Delete("/:id", productHandler.Delete)
}
