package notifier

import (
	"context"
	"log/slog"
	"time"

	"meetslot/internal/pkg/errs"
	"meetslot/internal/usecase/notify"

	"github.com/sony/gobreaker/v2"
)

var ErrCircuitOpen = errs.New("notifier circuit open")

type BreakerSettings struct {
	Name             string
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// BreakerNotifier stops calling a failing backend for OpenTimeout once
// FailureThreshold consecutive deliveries have failed.
type BreakerNotifier struct {
	next    notify.Notifier
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func NewBreakerNotifier(next notify.Notifier, settings BreakerSettings, logger *slog.Logger) *BreakerNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	threshold := settings.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				"notifier", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return &BreakerNotifier{next: next, breaker: cb}
}

func (n *BreakerNotifier) Notify(ctx context.Context, event notify.BookingConfirmed) error {
	_, err := n.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, n.next.Notify(ctx, event)
	})
	if errs.Is(err, gobreaker.ErrOpenState) || errs.Is(err, gobreaker.ErrTooManyRequests) {
		return errs.Mark(err, ErrCircuitOpen)
	}
	return err
}

func (n *BreakerNotifier) State() gobreaker.State {
	return n.breaker.State()
}
