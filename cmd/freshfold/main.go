package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/freshfold/freshfold/internal/adapters/api/rest"
	"github.com/freshfold/freshfold/internal/adapters/logger"
	"github.com/freshfold/freshfold/internal/adapters/payment"
	"github.com/freshfold/freshfold/internal/adapters/store"
	"github.com/freshfold/freshfold/internal/core/config"
	"github.com/freshfold/freshfold/internal/core/laundry"
)

func main() {
	if err := run(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed initilize config: %w", err)
	}

	lgr, err := logger.New(cfg.LogLevel, logger.OutputPath(cfg.LogPath))
	if err != nil {
		return fmt.Errorf("failed initialize logger: %w", err)
	}

	storage, err := store.New(ctx, cfg.Store, lgr)
	if err != nil {
		return fmt.Errorf("failed initilize storage: %w", err)
	}

	provider := payment.New(cfg.Payment, payment.Logger(lgr))

	service := laundry.New(ctx, cfg.Laundry, storage, provider, laundry.Logger(lgr))

	server, err := rest.New(
		service,
		rest.Logger(lgr),
		rest.Configure(cfg.Rest),
	)
	if err != nil {
		return fmt.Errorf("failed initialize rest server: %w", err)
	}

	err = server.Run()
	if err != nil {
		return fmt.Errorf("stop server, %w", err)
	}
	return nil
}
