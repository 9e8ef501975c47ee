package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/messaging"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaProducer_Publish(t *testing.T) {
	w := &recordingWriter{}
	p := messaging.NewKafkaProducerWithWriter(w)
	ev := entity.InventoryEvent{
		Type:      entity.EventStockLow,
		ProductID: "2",
		SKU:       "LOG-MX3-001",
		Stock:     5,
		MinStock:  15,
		Status:    entity.StatusLowStock,
		Timestamp: time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.Publish(context.Background(), ev))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "2", string(msg.Key))
	assert.Equal(t, "event-type", msg.Headers[0].Key)
	assert.Equal(t, entity.EventStockLow, string(msg.Headers[0].Value))

	var decoded entity.InventoryEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, ev, decoded)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaProducer_ErrorDelBroker(t *testing.T) {
	w := &recordingWriter{err: errors.New("leader not available")}
	err := messaging.NewKafkaProducerWithWriter(w).Publish(context.Background(), entity.InventoryEvent{Type: entity.EventMovementRegistered})
	require.Error(t, err)
	assert.Contains(t, err.Error(), entity.EventMovementRegistered)
}
