package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/vadimbarashkov/qr-redirect/internal/adapter/auth"
	"github.com/vadimbarashkov/qr-redirect/internal/adapter/qrimage"
	"github.com/vadimbarashkov/qr-redirect/internal/adapter/repository/postgres"
	"github.com/vadimbarashkov/qr-redirect/internal/config"
	"github.com/vadimbarashkov/qr-redirect/internal/usecase"
	pgpkg "github.com/vadimbarashkov/qr-redirect/pkg/postgres"
	"github.com/vadimbarashkov/qr-redirect/pkg/ratelimit"
	"github.com/vadimbarashkov/qr-redirect/pkg/retry"

	delivery "github.com/vadimbarashkov/qr-redirect/internal/adapter/delivery/http"
)

func NewLogger(env string) *httplog.Logger {
	opts := httplog.Options{
		LogLevel:        slog.LevelDebug,
		Concise:         true,
		RequestHeaders:  false,
		TimeFieldFormat: time.RFC3339,
	}
	if env != config.EnvDev {
		opts.LogLevel = slog.LevelInfo
		opts.JSON = true
		opts.Concise = false
	}

	return httplog.NewLogger("qr-redirect", opts)
}

func retryOptions(cfg config.Retry) []retry.Option {
	return []retry.Option{
		retry.WithAttempts(cfg.Attempts),
		retry.WithInitialDelay(cfg.InitialDelay),
		retry.WithMaxDelay(cfg.MaxDelay),
		retry.WithMultiplier(cfg.Multiplier),
		retry.WithJitter(cfg.Jitter),
	}
}

func connect(ctx context.Context, logger *httplog.Logger, cfg *config.Config) (*sqlx.DB, error) {
	var db *sqlx.DB

	opts := append(retryOptions(cfg.Retry), retry.WithObserver(func(attempt int, err error, delay time.Duration) {
		logger.Warn("database is not reachable yet",
			slog.Int("attempt", attempt),
			slog.Duration("retry_in", delay),
			slog.Any("err", err),
		)
	}))

	err := retry.Do(ctx, func(ctx context.Context) error {
		var err error
		db, err = pgpkg.New(
			ctx,
			cfg.Postgres.DSN(),
			pgpkg.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
			pgpkg.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
			pgpkg.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
			pgpkg.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
		)
		return err
	}, opts...)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := NewLogger(cfg.Env)

	db, err := connect(ctx, logger, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}
	defer db.Close()

	if err := pgpkg.RunMigrations(cfg.Postgres.MigrationsPath, cfg.Postgres.DSN()); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	tokens, err := auth.NewTokenService(cfg.Auth.TokenKey, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	renderer, err := qrimage.NewRenderer(cfg.QR.LogoPath)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	userRepo := postgres.NewUserRepository(db)
	qrCodeRepo := postgres.NewQRCodeRepository(db)
	redirectRepo := postgres.NewRedirectRepository(db)

	userUseCase := usecase.NewUserUseCase(userRepo, auth.NewPasswordHasher(), tokens)
	qrCodeUseCase := usecase.NewQRCodeUseCase(qrCodeRepo, userUseCase, renderer, cfg.BaseURL)
	redirectUseCase := usecase.NewRedirectUseCase(redirectRepo, qrCodeRepo, cfg.FallbackURL)

	loginLimiter := ratelimit.New(cfg.Auth.LoginRPS, cfg.Auth.LoginBurst)
	defer loginLimiter.Stop()

	router := delivery.NewRouter(
		logger,
		userUseCase,
		qrCodeUseCase,
		redirectUseCase,
		tokens,
		delivery.WithLoginLimiter(loginLimiter),
		delivery.WithResolveRetry(retryOptions(cfg.Retry)...),
	)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        router,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", slog.String("addr", server.Addr), slog.String("env", cfg.Env))

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
