package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := logging.SetupLogging()
	logger.Info("ledger-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Fatal("logging.SetLevel")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, logger)
	delegator.Start()

	svc := service.NewService(dbStorage.Read(), delegator)
	httpRest := api.NewRest(logger, envConfig.HTTPPort, dbStorage, svc)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpRest.Serve()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-signals:
		logger.WithField("signal", sig.String()).Info("ledger-server stopping")
	case <-serveErr:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpRest.Shutdown(ctx); err != nil {
		logger.WithError(err).Warn("HttpServer.Shutdown")
	}
	delegator.Stop()
	if err := dbStorage.Close(); err != nil {
		logger.WithError(err).Warn("storage.Close")
	}
}
