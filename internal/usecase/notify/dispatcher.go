package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"meetslot/internal/pkg/config"
)

// AsyncDispatcher fans events out to a fixed pool of workers over a bounded
// queue. Dispatch never blocks: when the queue is full the event is dropped.
type AsyncDispatcher struct {
	notifier Notifier
	queue    chan BookingConfirmed
	workers  int
	timeout  time.Duration
	logger   *slog.Logger

	mu      sync.RWMutex
	started bool
	closed  bool
	wg      sync.WaitGroup
}

func NewAsyncDispatcher(notifier Notifier, cfg config.NotifierConfig, logger *slog.Logger) *AsyncDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 1
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &AsyncDispatcher{
		notifier: notifier,
		queue:    make(chan BookingConfirmed, queueSize),
		workers:  workers,
		timeout:  cfg.Timeout,
		logger:   logger,
	}
}

func (d *AsyncDispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.run(i)
	}
	d.logger.Info("notification dispatcher started", "workers", d.workers, "queue_size", cap(d.queue))
}

// Stop closes the queue and waits for in-flight events until ctx expires.
func (d *AsyncDispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		d.logger.Warn("notification dispatcher stop timed out", "pending", len(d.queue))
		return ctx.Err()
	}
}

func (d *AsyncDispatcher) Dispatch(event BookingConfirmed) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("notification dropped: dispatcher stopped",
			"meeting_id", event.MeetingID.String(),
			"slot_id", event.SlotID.String())
		return
	}

	select {
	case d.queue <- event:
	default:
		d.logger.Warn("notification dropped: queue full",
			"meeting_id", event.MeetingID.String(),
			"slot_id", event.SlotID.String(),
			"queue_size", cap(d.queue))
	}
}

func (d *AsyncDispatcher) run(worker int) {
	defer d.wg.Done()
	for event := range d.queue {
		d.deliver(worker, event)
	}
}

func (d *AsyncDispatcher) deliver(worker int, event BookingConfirmed) {
	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("notifier panicked", "worker", worker, "panic", r)
		}
	}()

	if err := d.notifier.Notify(ctx, event); err != nil {
		d.logger.Error("failed to deliver notification",
			"worker", worker,
			"routing_key", event.RoutingKey(),
			"meeting_id", event.MeetingID.String(),
			"error", err.Error())
		return
	}

	d.logger.Debug("notification delivered",
		"worker", worker,
		"routing_key", event.RoutingKey(),
		"meeting_id", event.MeetingID.String())
}
