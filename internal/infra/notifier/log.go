package notifier

import (
	"context"
	"log/slog"

	"meetslot/internal/usecase/notify"
)

// LogNotifier writes confirmations to the structured log. It is the default
// backend for development and tests.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, event notify.BookingConfirmed) error {
	n.logger.InfoContext(ctx, "booking confirmed",
		"routing_key", event.RoutingKey(),
		"meeting_id", event.MeetingID.String(),
		"slot_id", event.SlotID.String(),
		"owner_id", event.OwnerID.String(),
		"title", event.Title,
		"slot_start", event.SlotStart,
		"slot_end", event.SlotEnd,
	)
	return nil
}

func (n *LogNotifier) Close() error {
	return nil
}
