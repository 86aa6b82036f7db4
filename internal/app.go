package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
	identity_adapter "github.com/srinugalla/the-slice-x/internal/adapters/identity"
	logger_adapter "github.com/srinugalla/the-slice-x/internal/adapters/logger"
	"github.com/srinugalla/the-slice-x/internal/adapters/metrics"
	postgres_adapter "github.com/srinugalla/the-slice-x/internal/adapters/postgres"
	"github.com/srinugalla/the-slice-x/internal/adapters/rest"
	"github.com/srinugalla/the-slice-x/internal/configs"
	"github.com/srinugalla/the-slice-x/internal/contracts"
	"github.com/srinugalla/the-slice-x/internal/core/port"
	"github.com/srinugalla/the-slice-x/internal/core/usecase"
	fluentlogger "github.com/srinugalla/the-slice-x/pkg/fluent_logger"
	"github.com/srinugalla/the-slice-x/pkg/postgres"
)

const dbConnectTimeout = 10 * time.Second

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp создает приложение. Здесь все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. Логгеры ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: !appConfig.StdoutLogger.IsJSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	closeFluent := func() {
		if fluentClient != nil {
			fluentClient.Close()
		}
	}

	// --- 2. Хранилище ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
		DatabaseURL:    appConfig.Database.URL,
		MaxConns:       appConfig.Database.MaxConns,
		ConnectTimeout: dbConnectTimeout,
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		closeFluent()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	listingStorage, err := postgres_adapter.NewListingStorageAdapter(dbPool, appConfig.Database.QueryTimeout)
	if err != nil {
		dbPool.Close()
		closeFluent()
		return nil, fmt.Errorf("failed to create listing storage adapter: %w", err)
	}

	filterRepository, err := postgres_adapter.NewFilterRepository(dbPool, appConfig.Database.QueryTimeout)
	if err != nil {
		dbPool.Close()
		closeFluent()
		return nil, fmt.Errorf("failed to create filter repository: %w", err)
	}

	// --- 3. Провайдер авторизации ---
	identityProvider, err := newIdentityProvider(appConfig.Auth)
	if err != nil {
		appLogger.Error("Failed to create identity provider", err, port.Fields{"auth_mode": appConfig.Auth.Mode})
		dbPool.Close()
		closeFluent()
		return nil, err
	}
	appLogger.Info("Identity provider initialized.", port.Fields{"auth_mode": appConfig.Auth.Mode})

	registry, err := contracts.NewRegistry()
	if err != nil {
		dbPool.Close()
		closeFluent()
		return nil, fmt.Errorf("failed to compile request schemas: %w", err)
	}

	// --- 4. Use cases ---
	revealContactUseCase := usecase.NewRevealContactUseCase(listingStorage)
	authenticateCallerUseCase := usecase.NewAuthenticateCallerUseCase(identityProvider)
	getFilterOptionsUseCase := usecase.NewGetFilterOptionsUseCase(filterRepository)

	// --- 5. REST ---
	promMetrics := metrics.NewPrometheusMetrics("slicex")

	handlers := rest.Handlers{
		Reveal: rest.NewRevealContactHandler(revealContactUseCase, registry, rest.RevealContactHandlerConfig{
			PageDefaults: rest.PageDefaults{
				DefaultLimit: appConfig.Reveal.DefaultPageSize,
				MaxLimit:     appConfig.Reveal.MaxPageSize,
			},
			ExposeStoreErrors: appConfig.Reveal.ExposeStoreErrors,
		}, promMetrics),
		Filters: rest.NewFilterHandler(getFilterOptionsUseCase),
		Health:  rest.NewHealthHandler(dbPool, 0),
		Auth:    rest.NewAuthMiddleware(authenticateCallerUseCase, promMetrics),
	}
	if appConfig.Rest.MetricsEnabled {
		handlers.Metrics = promMetrics.Handler()
	}

	apiServer := rest.NewServer(appConfig.Rest.PORT, handlers, promMetrics, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:       appConfig,
		dbPool:       dbPool,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

func newIdentityProvider(cfg configs.AuthConfig) (port.IdentityProviderPort, error) {
	switch cfg.Mode {
	case configs.AuthModeJWT:
		verifier, err := identity_adapter.NewJWTVerifier(cfg.JWTSecret, cfg.JWTAudience)
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT verifier: %w", err)
		}
		return verifier, nil
	case configs.AuthModeSupabase:
		client, err := identity_adapter.NewSupabaseClient(cfg.URL, cfg.AnonKey, cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create identity provider client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
	}
}

// Run запускает HTTP-сервер и ждет сигнала завершения или ошибки сервера.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		ctx, cancel := context.WithTimeout(context.Background(), a.config.Rest.ShutdownTimeout)
		defer cancel()
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	errorsCh := make(chan error, 1)

	go func() {
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", port.Fields{"port": a.config.Rest.PORT})
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-errorsCh:
		a.logger.Error("HTTP server failed, shutting down", err, nil)
		return err
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
