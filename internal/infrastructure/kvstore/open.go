package kvstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-stock/pkg/config"
)

// Open construye el almacén indicado por STORE_DRIVER.
func Open(ctx context.Context, cfg *config.Config) (repository.SnapshotStore, error) {
	switch cfg.Store.Driver {
	case config.StoreFile:
		return NewFileStore(cfg.Store.Dir)
	case config.StoreMemory:
		return NewMemoryStore(), nil
	case config.StoreRedis:
		return NewRedisStore(cfg.Redis)
	case config.StoreS3:
		return NewS3Store(ctx, cfg.S3)
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		store := postgres.NewSnapshotStore(pool, pool.Close)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido %q", cfg.Store.Driver)
	}
}
