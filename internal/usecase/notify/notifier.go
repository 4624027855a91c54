package notify

import "context"

// Notifier delivers a single event to an external channel.
type Notifier interface {
	Notify(ctx context.Context, event BookingConfirmed) error
}

// Dispatcher hands events off without blocking the caller.
type Dispatcher interface {
	Dispatch(event BookingConfirmed)
}
