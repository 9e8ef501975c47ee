package repository

import "context"

// Claves de las colecciones persistidas.
const (
	KeyProducts  = "inventory_products"
	KeyMovements = "inventory_movements"
)

// SnapshotStore almacén clave-valor donde se reescribe cada colección completa tras un cambio.
// Get devuelve domain.ErrNotFound si la clave no existe.
type SnapshotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
