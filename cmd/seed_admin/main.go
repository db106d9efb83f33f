// Crea el usuario administrador inicial (el único con permiso de subir y
// borrar productos). Lee ADMIN_EMAIL, ADMIN_PASSWORD y ADMIN_NAME del entorno.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tutu-catalog/internal/domain"
	"github.com/jhoicas/tutu-catalog/internal/domain/entity"
	"github.com/jhoicas/tutu-catalog/internal/infrastructure/postgres"
	"github.com/jhoicas/tutu-catalog/pkg/config"
	"github.com/jhoicas/tutu-catalog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal().Msg("ADMIN_EMAIL y ADMIN_PASSWORD son requeridos")
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrador"
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	userRepo := postgres.NewUserRepository(pool)
	if err := userRepo.Create(user); err != nil {
		if err == domain.ErrEmailAlreadyExists {
			log.Warn().Str("email", email).Msg("el admin ya existe, nada que hacer")
			return
		}
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Str("email", email).Str("id", user.ID).Msg("admin creado")
}
