package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"meetslot/internal/infra/notifier"
	"meetslot/internal/pkg/config"
	"meetslot/internal/usecase/notify"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
		fx.Annotate(
			NewDispatcher,
			fx.As(new(notify.Dispatcher)),
		),
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.NotifierConfig, logger *slog.Logger) (notify.Notifier, error) {
	n, closer, err := notifier.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return closeQuietly(closer, logger)
		},
	})

	return n, nil
}

// NewDispatcher starts the delivery workers with the app and drains them on
// shutdown. The hook is appended after the notifier's, so it runs first on stop.
func NewDispatcher(lc fx.Lifecycle, n notify.Notifier, cfg config.NotifierConfig, logger *slog.Logger) *notify.AsyncDispatcher {
	d := notify.NewAsyncDispatcher(n, cfg, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})

	return d
}

func closeQuietly(c io.Closer, logger *slog.Logger) error {
	if c == nil {
		return nil
	}
	if err := c.Close(); err != nil {
		logger.Warn("notifier close failed", "error", err)
	}
	return nil
}
