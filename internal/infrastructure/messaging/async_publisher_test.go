package messaging_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/messaging"
)

// blockingPublisher retiene cada entrega hasta que se cierra release.
type blockingPublisher struct {
	release chan struct{}

	mu     sync.Mutex
	events []entity.InventoryEvent
}

func (b *blockingPublisher) Publish(_ context.Context, ev entity.InventoryEvent) error {
	<-b.release
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ev)
	return nil
}

func (b *blockingPublisher) delivered() []entity.InventoryEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]entity.InventoryEvent(nil), b.events...)
}

func TestAsyncPublisher_NoBloqueaConBrokerLento(t *testing.T) {
	next := &blockingPublisher{release: make(chan struct{})}
	p := messaging.NewAsyncPublisher(next, 4, nil)

	start := time.Now()
	for _, kind := range []string{entity.EventMovementRegistered, entity.EventStockOut} {
		require.NoError(t, p.Publish(context.Background(), entity.InventoryEvent{Type: kind, ProductID: "1"}))
	}
	assert.Less(t, time.Since(start), time.Second)
	assert.Empty(t, next.delivered())

	close(next.release)
	require.NoError(t, p.Close())

	got := next.delivered()
	require.Len(t, got, 2)
	assert.Equal(t, entity.EventMovementRegistered, got[0].Type)
	assert.Equal(t, entity.EventStockOut, got[1].Type)
}

func TestAsyncPublisher_ColaLlenaDescarta(t *testing.T) {
	next := &blockingPublisher{release: make(chan struct{})}
	p := messaging.NewAsyncPublisher(next, 1, nil)
	ctx := context.Background()

	// el primero lo toma la goroutine (bloqueada), el segundo ocupa la cola
	require.NoError(t, p.Publish(ctx, entity.InventoryEvent{Type: entity.EventMovementRegistered}))
	require.Eventually(t, func() bool {
		return p.Publish(ctx, entity.InventoryEvent{Type: entity.EventStockLow}) == nil
	}, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, p.Publish(ctx, entity.InventoryEvent{Type: entity.EventStockOut}), messaging.ErrQueueFull)

	close(next.release)
	require.NoError(t, p.Close())
	assert.Len(t, next.delivered(), 2)
	assert.ErrorIs(t, p.Publish(ctx, entity.InventoryEvent{}), messaging.ErrPublisherClosed)
}
