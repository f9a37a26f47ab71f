package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/account"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/schema"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

const (
	apiTitle   = "Ledger API"
	apiVersion = "1.0.0"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Storage pinger
	Service *service.Service

	server *http.Server
}

func NewRest(logger *logrus.Logger, port string, storage pinger, svc *service.Service) *Rest {
	r := &Rest{
		Logger:  logger,
		Port:    port,
		Storage: storage,
		Service: svc,
	}
	r.server = &http.Server{
		Addr:              ":" + port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}
	return r
}

// Handler builds the router: /status on the plain mux and every v1
// operation through huma.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig(apiTitle, apiVersion))
	api.UseMiddleware(logging.Middleware(r.Logger))

	schema.NewInitializeSchemaHandler(r.Service.Schema).Register(api)

	account.NewRegisterAccountPathHandler(r.Service.Account).Register(api)
	account.NewListAccountsHandler(r.Service.Account).Register(api)
	account.NewGetAccountHandler(r.Service.Account).Register(api)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewAccountTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewTagsHandler(r.Service.Transaction).Register(api)
	transaction.NewAttachmentsHandler(r.Service.Transaction).Register(api)

	return mux
}

// Serve blocks until the server stops. A call to Shutdown makes it return nil.
func (r *Rest) Serve() error {
	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}

func (r *Rest) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}
