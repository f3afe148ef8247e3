package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"garmentsync/internal/events"
)

var jsonMarshal = json.Marshal

const writeTimeout = 10 * time.Second

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes activity events asynchronously. Events are queued on a
// buffered channel and dropped with a warning when the queue is full.
type Producer struct {
	writer KafkaWriter
	events chan events.Event
	logger *zap.Logger
	done   chan struct{}
}

var _ events.Publisher = (*Producer)(nil)

func NewProducer(brokers []string, topic string, buffer int, logger *zap.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return newProducer(writer, buffer, logger)
}

func newProducer(writer KafkaWriter, buffer int, logger *zap.Logger) *Producer {
	p := &Producer{
		writer: writer,
		events: make(chan events.Event, buffer),
		logger: logger.Named("kafka_producer"),
		done:   make(chan struct{}),
	}
	go p.loop()
	return p
}

func (p *Producer) Publish(event events.Event) {
	select {
	case p.events <- event:
	default:
		p.logger.Warn("kafka producer queue full, dropping event",
			zap.String("eventType", string(event.Type)),
			zap.String("orderId", event.OrderID),
		)
	}
}

func (p *Producer) loop() {
	defer close(p.done)
	for event := range p.events {
		p.send(event)
	}
}

func (p *Producer) send(event events.Event) {
	value, err := jsonMarshal(event)
	if err != nil {
		p.logger.Error("failed to serialize event",
			zap.Error(err),
			zap.String("eventId", event.ID),
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		p.logger.Error("failed to produce event",
			zap.Error(err),
			zap.String("eventType", string(event.Type)),
			zap.String("orderId", event.OrderID),
		)
	}
}

// Close flushes queued events and closes the writer. Publish must not be
// called after Close.
func (p *Producer) Close() {
	close(p.events)
	<-p.done
	if err := p.writer.Close(); err != nil {
		p.logger.Error("failed to close kafka writer", zap.Error(err))
	}
}
