package notifier

import (
	"io"
	"log/slog"

	"meetslot/internal/pkg/config"
	"meetslot/internal/pkg/errs"
	"meetslot/internal/usecase/notify"
)

// Backend is a Notifier that owns a connection.
type Backend interface {
	notify.Notifier
	io.Closer
}

// New builds the configured backend. Broker backends are wrapped in a circuit
// breaker; the returned Closer releases the underlying connection.
func New(cfg config.NotifierConfig, logger *slog.Logger) (notify.Notifier, io.Closer, error) {
	var (
		backend Backend
		err     error
	)

	switch cfg.Backend {
	case "", config.NotifierBackendLog:
		b := NewLogNotifier(logger)
		return b, b, nil
	case config.NotifierBackendRabbitMQ:
		backend, err = NewRabbitMQNotifier(cfg.RabbitMQURL, cfg.RabbitMQExchange, logger)
	case config.NotifierBackendKafka:
		backend, err = NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
	default:
		return nil, nil, errs.New("unknown notifier backend: " + cfg.Backend)
	}
	if err != nil {
		return nil, nil, err
	}

	wrapped := NewBreakerNotifier(backend, BreakerSettings{
		Name:             cfg.Backend,
		FailureThreshold: cfg.BreakerFailureThreshold,
		OpenTimeout:      cfg.BreakerOpenTimeout,
	}, logger)
	return wrapped, backend, nil
}
