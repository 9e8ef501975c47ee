package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/postgres"
)

// fakeQuerier simula la tabla inventory_snapshots en memoria.
type fakeQuerier struct {
	rows  map[string]string
	execs []string
	fail  error
}

type fakeRow struct {
	val string
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = []byte(r.val)
	return nil
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if f.fail != nil {
		return pgconn.CommandTag{}, f.fail
	}
	if len(args) == 2 {
		f.rows[args[0].(string)] = args[1].(string)
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	v, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{val: v}
}

func TestSnapshotStore_GetPut(t *testing.T) {
	q := &fakeQuerier{rows: map[string]string{}}
	closed := false
	store := postgres.NewSnapshotStore(q, func() { closed = true })
	ctx := context.Background()

	require.NoError(t, store.EnsureSchema(ctx))
	assert.Contains(t, q.execs[0], "CREATE TABLE IF NOT EXISTS inventory_snapshots")

	_, err := store.Get(ctx, repository.KeyProducts)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Put(ctx, repository.KeyProducts, []byte(`[{"id":"1"}]`)))
	got, err := store.Get(ctx, repository.KeyProducts)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, store.Close())
	assert.True(t, closed)
}

func TestSnapshotStore_ErrorDeBD(t *testing.T) {
	q := &fakeQuerier{rows: map[string]string{}, fail: errors.New("conexión perdida")}
	store := postgres.NewSnapshotStore(q, nil)

	err := store.Put(context.Background(), repository.KeyMovements, []byte(`[]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inventory_movements")
}
