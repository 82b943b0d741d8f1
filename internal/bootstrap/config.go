package bootstrap

import (
	"fmt"

	"github.com/dataplatform-hub/search/internal/config"
	"github.com/dataplatform-hub/search/internal/logger"
)

// LoadConfig loads and validates configuration.
func LoadConfig() (*config.Config, error) {
	configPath := config.GetConfigPath("config.yml")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if validationErr := cfg.Validate(); validationErr != nil {
		return nil, fmt.Errorf("validate config: %w", validationErr)
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config) (logger.Logger, error) {
	loggerConfig := logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	}
	if cfg.Logging.Output != "" {
		loggerConfig.OutputPaths = []string{cfg.Logging.Output}
	}

	log, err := logger.New(loggerConfig)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}
