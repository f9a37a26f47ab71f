package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// app is the wiring one command invocation runs against.
type app struct {
	logger    *logrus.Logger
	storage   *storage.Storage
	delegator *operator.OperatorDelegator
	service   *service.Service
}

func (o *options) open() (*app, error) {
	cfg, err := config.ProcessEnvironmentVariables(o.envFile)
	if err != nil {
		return nil, err
	}

	logger := logging.SetupLogging()
	logger.Out = os.Stderr
	level := cfg.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	if err := logging.SetLevel(logger, level); err != nil {
		return nil, err
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("storage.NewStorage: %w", err)
	}

	// One worker is enough for a single command.
	delegator := operator.NewOperatorDelegator(store, 1, logger)
	delegator.Start()

	return &app{
		logger:    logger,
		storage:   store,
		delegator: delegator,
		service:   service.NewService(store.Read(), delegator),
	}, nil
}

func (a *app) Close() {
	a.delegator.Stop()
	if err := a.storage.Close(); err != nil {
		a.logger.WithError(err).Warn("storage.Close")
	}
}
