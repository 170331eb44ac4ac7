// Package bootstrap prepares configuration, logging and the business clock
// for every command.
package bootstrap

import (
	"fmt"

	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/config"
	"github.com/EDUARX24/Tickets-AI/internal/shared/biztime"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

// Load reads the configuration for env and initializes the global logger.
func Load(env string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(MapEnvToGinMode(env))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == "debug"); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	case "":
		return "default"
	default:
		return "debug"
	}
}
