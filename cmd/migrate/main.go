// migrate aplica las migraciones SQL embebidas contra DATABASE_URL / DB_*.
//
// Uso: go run ./cmd/migrate
package main

import (
	"context"
	"time"

	"github.com/jhoicas/homeexotica-crm/internal/infrastructure/postgres"
	"github.com/jhoicas/homeexotica-crm/pkg/config"
	"github.com/jhoicas/homeexotica-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Strs("applied", applied).Msg("migraciones")
	}
	if len(applied) == 0 {
		log.Info().Msg("base de datos al día")
		return
	}
	log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
}
