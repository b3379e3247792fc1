package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"nba-draft-hub/internal/app/dreamteam"
	"nba-draft-hub/internal/app/players"
	"nba-draft-hub/internal/app/prospects"
	"nba-draft-hub/internal/app/teams"
	"nba-draft-hub/internal/auth"
	"nba-draft-hub/internal/backend"
	"nba-draft-hub/internal/config"
	httpserver "nba-draft-hub/internal/http"
	"nba-draft-hub/internal/http/handlers"
	"nba-draft-hub/internal/logging"
	"nba-draft-hub/internal/logos"
	"nba-draft-hub/internal/metrics"
	"nba-draft-hub/internal/poller"
	"nba-draft-hub/internal/providers"
	"nba-draft-hub/internal/storage"
)

var (
	metricsSetup = metrics.Setup
	storageOpen  = storage.Open
)

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	poller        *poller.Poller
	releaseLimit  func()
	closeStorage  func() error
}

// New constructs a server with the configured provider, backend and storage.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) (*Server, error) {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	store, closeStorage, err := storageOpen(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	release := func() {}
	if provider == nil {
		provider, release = factory.build(cfg)
	} else {
		provider, release = factory.wrap(cfg, provider)
	}

	client := backend.NewClient(backend.Config{
		BaseURL:  cfg.Backend.BaseURL,
		Timeout:  cfg.Backend.Timeout,
		Recorder: recorder,
		Logger:   logger,
	})
	session := auth.NewSession(auth.Config{
		Issuer:   client,
		Store:    store,
		Logger:   logger,
		Recorder: recorder,
	})

	catalog := logos.Default()
	teamStore := teams.NewStore(provider, catalog, logger)
	refresher := poller.New("teams", teamStore.Refresh, logger, recorder, cfg.TeamsRefresh)
	handler := handlers.NewHandler(handlers.Deps{
		Teams:   teamStore,
		Players: players.NewStore(provider, logger),
		Prospects: prospects.NewStore(prospects.Config{
			Backend:  client,
			Session:  session,
			Logger:   logger,
			Recorder: recorder,
		}),
		DreamTeam: dreamteam.NewSelector(store, logger),
		Session:   session,
		Logos:     catalog.FS(),
		Logger:    logger,
		Readiness: refresher.Status,
	})

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		httpServer:    buildHTTPServer(cfg, httpserver.NewRouter(handler, logger, recorder)),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		poller:        refresher,
		releaseLimit:  release,
		closeStorage:  closeStorage,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, router http.Handler) httpServer {
	return newNetHTTPServer(cfg.Port, router)
}

// Run starts the teams refresher and the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	if s.poller != nil {
		s.poller.Start(ctx)
	}
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.poller != nil {
		_ = s.poller.Stop(shutdownCtx)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// Stop the limiter ticker once no handler can call the provider.
	if s.releaseLimit != nil {
		s.releaseLimit()
	}

	if s.closeStorage != nil {
		if err := s.closeStorage(); err != nil {
			logging.Warn(s.logger, "storage close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := cfg.Metrics.Telemetry()

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
