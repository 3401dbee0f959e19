package logger

import (
	"fmt"

	"go.uber.org/zap"
)

type config struct {
	outputPath string
}

type option func(*config)

func OutputPath(path string) option {
	return func(c *config) {
		c.outputPath = path
	}
}

func New(level string, options ...option) (*zap.Logger, error) {
	c := &config{}
	for _, opt := range options {
		opt(c)
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	if c.outputPath != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, c.outputPath)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed build logger: %w", err)
	}

	return log, nil
}
