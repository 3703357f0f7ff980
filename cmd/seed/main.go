// Comando de mantenimiento: crea la tabla del catálogo si no existe e inserta
// ítems de demostración a través del repositorio real. Pensado para entornos
// de desarrollo; es idempotente respecto al esquema pero no a los datos.
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS catalog (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT        NOT NULL,
	description TEXT        NOT NULL DEFAULT '',
	image       TEXT        NOT NULL DEFAULT '',
	price       NUMERIC     NOT NULL CHECK (price >= 0),
	currency    TEXT        NOT NULL DEFAULT '',
	category    TEXT        NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_catalog_category ON catalog (category);`

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

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	repo := postgres.NewCatalogRepository(pool)
	now := time.Now().UTC()
	demo := []*entity.CatalogItem{
		{Name: "Margherita", Description: "Tomate, mozzarella y albahaca", Image: "/img/margherita.png", Price: decimal.NewFromFloat(8.50), Currency: "EUR", Category: "pizza"},
		{Name: "Quattro Stagioni", Description: "Alcachofa, jamón, champiñones y aceitunas", Image: "/img/quattro.png", Price: decimal.NewFromFloat(11.90), Currency: "EUR", Category: "pizza"},
		{Name: "Tiramisú", Description: "Postre clásico de café y mascarpone", Image: "/img/tiramisu.png", Price: decimal.NewFromFloat(5.25), Currency: "EUR", Category: "postre"},
		{Name: "Agua mineral", Description: "", Image: "", Price: decimal.NewFromFloat(1.80), Currency: "EUR", Category: "bebida"},
	}
	for _, it := range demo {
		it.CreatedAt = now
		it.UpdatedAt = now
		id, err := repo.Insert(ctx, it)
		if err != nil {
			log.Fatal().Err(err).Str("name", it.Name).Msg("insertar ítem demo")
		}
		log.Info().Int64("id", id).Str("name", it.Name).Msg("ítem insertado")
	}

	log.Info().Int("count", len(demo)).Msg("seed completado")
}
