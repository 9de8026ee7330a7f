package average

import (
	"context"
	"encoding/json"

	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/pkg/config"
	"github.com/muhammadchandra19/quotestream/pkg/errors"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes every flushed hourly average to a kafka topic, keyed by pair.
type Publisher struct {
	writer messageWriter
	logger logger.Interface
}

var _ quoteV1.AveragePublisher = (*Publisher)(nil)

// NewPublisher creates a Publisher for cfg.AveragesTopic.
func NewPublisher(cfg config.KafkaConfig, log logger.Interface) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.AveragesTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: cfg.WriteTimeout,
	}

	return newPublisher(writer, log)
}

func newPublisher(writer messageWriter, log logger.Interface) *Publisher {
	return &Publisher{
		writer: writer,
		logger: log,
	}
}

// Publish sends avg as JSON. Messages of one pair land on one partition.
func (p *Publisher) Publish(ctx context.Context, avg quoteV1.HourlyAverage) error {
	value, err := json.Marshal(avg)
	if err != nil {
		return errors.NewTracer("hourly_average_marshal_error").Wrap(err)
	}

	msg := kafka.Message{
		Key:   []byte(avg.Pair),
		Value: value,
		Time:  avg.UpdatedAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, errors.TracerFromError(err),
			logger.NewField("action", "publish hourly average"),
			logger.NewField("pair", avg.Pair),
		)
		return errors.NewErrorDetails("failed to publish hourly average", string(errors.KafkaPublishError), "pair")
	}

	return nil
}

// Close flushes pending messages and closes the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
