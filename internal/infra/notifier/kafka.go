package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"meetslot/internal/pkg/errs"
	"meetslot/internal/usecase/notify"

	"github.com/segmentio/kafka-go"
)

type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier writes confirmations to a topic keyed by meeting ID, so all
// events of one meeting land on the same partition.
type KafkaNotifier struct {
	writer kafkaWriter
	logger *slog.Logger
}

func NewKafkaNotifier(brokers []string, topic string, logger *slog.Logger) (*KafkaNotifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(brokers) == 0 {
		return nil, errs.New("at least one kafka broker is required")
	}
	if topic == "" {
		return nil, errs.New("kafka topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Error("kafka writer error", "detail", msg, "args", args)
		}),
	}

	logger.Info("Kafka notifier configured", "topic", topic, "brokers", brokers)

	return &KafkaNotifier{writer: writer, logger: logger}, nil
}

func (n *KafkaNotifier) Notify(ctx context.Context, event notify.BookingConfirmed) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.MeetingID.String()),
		Value: body,
		Time:  event.ConfirmedAt,
		Headers: []kafka.Header{
			{Key: "routing_key", Value: []byte(event.RoutingKey())},
			{Key: "content_type", Value: []byte("application/json")},
		},
	})
	if err != nil {
		return errs.Wrap(err, "failed to write booking event")
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	if err := n.writer.Close(); err != nil {
		return errs.Wrap(err, "failed to close kafka writer")
	}
	n.logger.Info("Kafka notifier closed")
	return nil
}
