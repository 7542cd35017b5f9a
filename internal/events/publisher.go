package events

import (
	"context"
	"encoding/json"
	"time"

	"arton360/internal/logger"
	"arton360/internal/models"

	"github.com/segmentio/kafka-go"
)

const Topic = "product-events"

// Event is the wire shape shared by the publisher and the worker.
type Event struct {
	Type      string                 `json:"type"`
	ProductID string                 `json:"product_id"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

// Publisher emits catalog events. With no brokers configured it degrades
// to a no-op so the API can run standalone.
type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewPublisher(brokers string, logger *logger.Logger) *Publisher {
	if brokers == "" {
		logger.Info("Kafka brokers not configured, product events disabled")
		return &Publisher{logger: logger}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}

	return &Publisher{writer: writer, logger: logger}
}

// ProductCreated publishes the creation of a designer product.
func (p *Publisher) ProductCreated(ctx context.Context, product *models.Product) error {
	if p.writer == nil {
		return nil
	}

	event := Event{
		Type:      models.EventProductCreated,
		ProductID: product.ID,
		Data: map[string]interface{}{
			"vendor_id": product.VendorID,
			"sku":       product.SKU,
			"type":      string(product.Type),
		},
		Timestamp: time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(product.ID),
		Value: value,
	}); err != nil {
		p.logger.Error("Failed to publish %s for %s: %v", event.Type, product.ID, err)
		return err
	}

	p.logger.Debug("Published %s for product %s", event.Type, product.ID)
	return nil
}

func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
