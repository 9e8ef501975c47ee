// Package messaging publica los eventos de inventario hacia Kafka.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
)

const publishTimeout = 5 * time.Second

// MessageWriter subconjunto de *kafka.Writer usado por el productor.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var _ inventory.EventPublisher = (*KafkaProducer)(nil)

// KafkaProducer implementa inventory.EventPublisher. La clave del mensaje es el ID del producto,
// así los eventos de un mismo producto llegan en orden a la misma partición.
type KafkaProducer struct {
	writer MessageWriter
}

// NewKafkaProducer crea el writer para los brokers y el tópico indicados.
func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Compression:  kafka.Snappy,
	}
	return NewKafkaProducerWithWriter(writer)
}

// NewKafkaProducerWithWriter usa un writer ya construido (tests).
func NewKafkaProducerWithWriter(w MessageWriter) *KafkaProducer {
	return &KafkaProducer{writer: w}
}

// Publish serializa el evento y lo escribe en el tópico.
func (p *KafkaProducer) Publish(ctx context.Context, event entity.InventoryEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serializar evento %s: %w", event.Type, err)
	}

	message := kafka.Message{
		Key:   []byte(event.ProductID),
		Value: payload,
		Time:  event.Timestamp,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("escribir evento %s en kafka: %w", event.Type, err)
	}
	return nil
}

// Close vacía y cierra el writer.
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
