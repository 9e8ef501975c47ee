package memory

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// Load lee ambas colecciones del store. Cada una cae por separado al dataset semilla si no existe
// o no se puede decodificar. El estado de cada producto se vuelve a derivar al cargar.
func Load(ctx context.Context, store repository.SnapshotStore, log *logger.Logger) ([]entity.Product, []*entity.Movement) {
	if log == nil {
		log = logger.Nop()
	}
	var products []entity.Product
	if loadKey(ctx, store, repository.KeyProducts, &products, log) {
		products = compactProducts(products, log)
	} else {
		products = SeedProducts()
	}
	for i := range products {
		inventory.Refresh(&products[i])
	}

	var movements []*entity.Movement
	if loadKey(ctx, store, repository.KeyMovements, &movements, log) {
		movements = compactMovements(movements, log)
	} else {
		movements = SeedMovements()
	}

	log.Info().
		Int("products", len(products)).
		Int("movements", len(movements)).
		Msg("estado de inventario cargado")
	return products, movements
}

func loadKey(ctx context.Context, store repository.SnapshotStore, key string, dst any, log *logger.Logger) bool {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Info().Str("key", key).Msg("colección ausente, se usa el dataset semilla")
		} else {
			log.Warn().Err(err).Str("key", key).Msg("lectura de colección, se usa el dataset semilla")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("colección ilegible, se usa el dataset semilla")
		return false
	}
	return true
}

// compactProducts descarta entradas null o sin id.
func compactProducts(in []entity.Product, log *logger.Logger) []entity.Product {
	out := in[:0]
	for _, p := range in {
		if p.ID == "" {
			continue
		}
		out = append(out, p)
	}
	if dropped := len(in) - len(out); dropped > 0 {
		log.Warn().Int("dropped", dropped).Str("key", repository.KeyProducts).Msg("entradas inválidas descartadas")
	}
	return out
}

// compactMovements descarta entradas null o sin id; el libro nunca contiene punteros nil.
func compactMovements(in []*entity.Movement, log *logger.Logger) []*entity.Movement {
	out := in[:0]
	for _, m := range in {
		if m == nil || m.ID == "" {
			continue
		}
		out = append(out, m)
	}
	if dropped := len(in) - len(out); dropped > 0 {
		log.Warn().Int("dropped", dropped).Str("key", repository.KeyMovements).Msg("entradas inválidas descartadas")
	}
	return out
}
