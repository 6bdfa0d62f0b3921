package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/MKhiriev/go-help-crypt/internal/adapter"
	"github.com/MKhiriev/go-help-crypt/internal/config"
	"github.com/MKhiriev/go-help-crypt/internal/crypto"
	"github.com/MKhiriev/go-help-crypt/internal/gateway"
	httphandler "github.com/MKhiriev/go-help-crypt/internal/handler/http"
	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/internal/service"
	"github.com/MKhiriev/go-help-crypt/internal/store"
	"github.com/MKhiriev/go-help-crypt/internal/workers"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	cfg      config.ClientConfig
	log      *logger.Logger
	services *service.Services
	server   *http.Server
	refresh  service.RefreshJob
}

// NewApp assembles the client runtime: local storage, the ledger adapter,
// the encryption gateway, domain services, and the local HTTP API.
//
// An empty wallet key is not an error: the client starts in read-only mode
// and transacting operations report the missing signer when invoked.
func NewApp(cfg config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	var signer adapter.Signer
	if cfg.Wallet.PrivateKey != "" {
		signer, err = adapter.NewLocalKeySigner(cfg.Wallet.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("create signer: %w", err)
		}
	}

	backend, err := ethclient.Dial(cfg.Chain.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial ledger node: %w", err)
	}

	ledger, err := adapter.NewEthLedgerAdapter(backend, signer, log)
	if err != nil {
		return nil, fmt.Errorf("create ledger adapter: %w", err)
	}

	gw, err := buildGateway(cfg.Gateway)
	if err != nil {
		return nil, err
	}

	services := service.NewServices(cfg, storages, ledger, gw, signer, crypto.NewKeyringService(), log)
	handler := httphandler.NewHandler(services, storages.OperationLog, cfg.App.Version, cfg.Chain.ID, log)

	server := &http.Server{
		Addr:         cfg.Server.HTTPAddress,
		Handler:      handler.Init(),
		ReadTimeout:  cfg.Server.RequestTimeout,
		WriteTimeout: cfg.Server.RequestTimeout,
	}

	return &App{
		cfg:      cfg,
		log:      log,
		services: services,
		server:   server,
		refresh:  service.NewRefreshJob(services.Orchestrator),
	}, nil
}

// Run starts the background refresh worker and the local HTTP API, then
// blocks until ctx is cancelled or the server fails. On cancellation the
// server is shut down gracefully.
func (a *App) Run(ctx context.Context) error {
	workers.NewWorkers(
		workers.NewRefreshWorker(ctx, a.refresh, a.cfg.Workers.RefreshInterval),
	).Run()
	defer a.refresh.Stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.server.ListenAndServe()
	}()

	a.log.Info().
		Str("address", a.cfg.Server.HTTPAddress).
		Str("chain", a.cfg.Chain.Name).
		Msg("local api listening")

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("local api server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown local api: %w", err)
	}

	return nil
}

func buildGateway(cfg config.ClientGateway) (gateway.Gateway, error) {
	switch cfg.Mode {
	case "relayer":
		return gateway.NewRelayerGateway(gateway.RelayerConfig{
			BaseURL: cfg.RelayerURL,
			Timeout: cfg.RequestTimeout,
		}), nil
	case "inprocess":
		return gateway.NewInProcessGateway(), nil
	default:
		return nil, fmt.Errorf("unknown gateway mode: %q", cfg.Mode)
	}
}
