package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/king0ffire/inventory-service/internal/inventory/domain"
	"github.com/king0ffire/inventory-service/pkg/logger"
)

// Publisher wraps a Kafka producer for inventory lifecycle events
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishInventoryCreated publishes an inventory created event
func (p *Publisher) PublishInventoryCreated(ctx context.Context, inventory *domain.Inventory) error {
	return p.publish(ctx, EventTypeInventoryCreated, inventory)
}

// PublishRestockStarted publishes a restock started event
func (p *Publisher) PublishRestockStarted(ctx context.Context, inventory *domain.Inventory) error {
	return p.publish(ctx, EventTypeRestockStarted, inventory)
}

// PublishRestockStopped publishes a restock stopped event
func (p *Publisher) PublishRestockStopped(ctx context.Context, inventory *domain.Inventory) error {
	return p.publish(ctx, EventTypeRestockStopped, inventory)
}

func (p *Publisher) publish(ctx context.Context, eventType string, inventory *domain.Inventory) error {
	tracer := otel.Tracer("inventory-events")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicInventoryEvents),
			attribute.String("event.type", eventType),
			attribute.Int64("inventory.id", int64(inventory.ID)),
		),
	)
	defer span.End()

	event := InventoryEvent{
		EventID:             uuid.NewString(),
		EventType:           eventType,
		InventoryID:         inventory.ID,
		Name:                inventory.Name,
		Quantity:            inventory.Quantity,
		RestockLevel:        inventory.RestockLevel,
		Condition:           inventory.Condition.String(),
		RestockingAvailable: inventory.RestockingAvailable,
		Timestamp:           time.Now(),
	}

	span.SetAttributes(attribute.String("event.id", event.EventID))

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(event.EventID)},
	}
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   TopicInventoryEvents,
		Key:     sarama.StringEncoder(fmt.Sprintf("inventory_%d", inventory.ID)),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", TopicInventoryEvents).
			Uint("inventory_id", inventory.ID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published")

	logger.Logger.Info().
		Str("event_id", event.EventID).
		Str("event_type", eventType).
		Str("topic", TopicInventoryEvents).
		Int32("partition", partition).
		Int64("offset", offset).
		Uint("inventory_id", inventory.ID).
		Msg("Inventory event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
