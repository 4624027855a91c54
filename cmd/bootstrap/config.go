package bootstrap

import (
	"meetslot/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigParts,
)

// ConfigParts exposes the per-component sections of config.Config.
var ConfigParts = fx.Provide(
	func(cfg config.Config) config.DBConfig { return cfg.DB },
	func(cfg config.Config) config.ServerConfig { return cfg.Server },
	func(cfg config.Config) config.NotifierConfig { return cfg.Notifier },
)
