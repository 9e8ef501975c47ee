package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ repository.SnapshotStore = (*SnapshotStore)(nil)

// Querier es el subconjunto de pgxpool.Pool / pgx.Tx que usa el store.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS inventory_snapshots (
		key        TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// SnapshotStore guarda cada colección como una fila JSONB en inventory_snapshots.
type SnapshotStore struct {
	q      Querier
	closer func()
}

// NewSnapshotStore construye el store sobre un pool o tx. closer (opcional) se invoca en Close.
func NewSnapshotStore(q Querier, closer func()) *SnapshotStore {
	return &SnapshotStore{q: q, closer: closer}
}

// EnsureSchema crea la tabla si no existe.
func (s *SnapshotStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear tabla inventory_snapshots: %w", err)
	}
	return nil
}

// Get lee el payload de la clave.
func (s *SnapshotStore) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.q.QueryRow(ctx, `SELECT payload FROM inventory_snapshots WHERE key = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot %s: %w", key, err)
	}
	return payload, nil
}

// Put inserta o reemplaza el payload de la clave.
func (s *SnapshotStore) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO inventory_snapshots (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	if _, err := s.q.Exec(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", key, err)
	}
	return nil
}

// Close libera el pool si el store es su dueño.
func (s *SnapshotStore) Close() error {
	if s.closer != nil {
		s.closer()
	}
	return nil
}
