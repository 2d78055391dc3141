// Seed de cuentas iniciales: crea un administrador y un empleado de ejemplo
// si no existen todavía. Pensado para entornos de desarrollo.
//
// Uso:
//
//	SEED_ADMIN_PASSWORD=... SEED_EMPLEADO_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"os"

	"github.com/elparadero/inventario-api/internal/application/dto"
	"github.com/elparadero/inventario-api/internal/application/usecase"
	"github.com/elparadero/inventario-api/internal/domain/entity"
	"github.com/elparadero/inventario-api/internal/infrastructure/postgres"
	"github.com/elparadero/inventario-api/pkg/config"
	"github.com/elparadero/inventario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	userUC := usecase.NewUserUseCase(userRepo)

	seeds := []dto.CreateUserRequest{
		{
			Username:    "admin",
			DisplayName: "Administrador",
			Email:       "admin@elparadero.local",
			Password:    envOr("SEED_ADMIN_PASSWORD", "cambiar-ahora"),
			Role:        entity.RoleAdmin,
		},
		{
			Username:    "empleado",
			DisplayName: "Empleado",
			Email:       "empleado@elparadero.local",
			Password:    envOr("SEED_EMPLEADO_PASSWORD", "cambiar-ahora"),
			Role:        entity.RoleEmpleado,
		},
	}

	for _, in := range seeds {
		existing, err := userRepo.GetByUsername(in.Username)
		if err != nil {
			log.Fatal().Err(err).Str("username", in.Username).Msg("consultar usuario")
		}
		if existing != nil {
			log.Info().Str("username", in.Username).Msg("usuario ya existe, se omite")
			continue
		}
		created, err := userUC.Create(in)
		if err != nil {
			log.Fatal().Err(err).Str("username", in.Username).Msg("crear usuario")
		}
		log.Info().
			Str("username", created.Username).
			Str("role", created.Role).
			Msg("usuario creado")
	}

	log.Info().Msg("seed completado")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
