package main

import (
	"context"
	"time"

	"github.com/tu-usuario/despensa-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/despensa-api/pkg/config"
	"github.com/tu-usuario/despensa-api/pkg/logger"
)

// Aplica el esquema embebido. Idempotente: correrlo de nuevo no toca datos.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración")
	}
	log.Info().Msg("esquema aplicado")
}
