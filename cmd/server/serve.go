package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/cache"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/favorites"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/lifecycle"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/metrics"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/middleware"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/payments"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/profiles"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/properties"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/service"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Connect API server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := cfg.RequireJWTSecret(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Migrate(ctx); err != nil {
		return err
	}
	slog.Info("Storage initialized", "driver", cfg.DBDriver)

	m := metrics.New()
	appCache, closeCache := openCache(ctx)
	defer closeCache()

	engine := lifecycle.New(store,
		lifecycle.WithCache(appCache),
		lifecycle.WithMetrics(m),
	)
	props := properties.New(store, nil)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	mux := http.NewServeMux()
	service.Mount(mux, service.Dependencies{
		Engine:     engine,
		Properties: props,
		Favorites:  favorites.New(store),
		Profiles:   profiles.New(store),
	}, connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.Authenticate(jwtManager),
		middleware.LoggingInterceptor(),
	))
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	var scheduler *payments.Scheduler
	if cfg.PaymentsSchedule != "" {
		realizer := payments.NewRealizer(store,
			payments.WithGracePeriod(cfg.PaymentGracePeriod),
			payments.WithMetrics(m),
		)
		scheduler, err = payments.NewScheduler(realizer, cfg.PaymentsSchedule, time.Minute)
		if err != nil {
			return err
		}
		scheduler.Start()
	}

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return err
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}
	return server.Shutdown(shutdownCtx)
}

// openCache connects to Redis when configured. Without Redis, or when it is
// unreachable, listings are served straight from the database.
func openCache(ctx context.Context) (cache.ApplicationCache, func()) {
	if cfg.RedisAddr == "" {
		return cache.Noop{}, func() {}
	}

	r, err := cache.Dial(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
	if err != nil {
		slog.Warn("Redis unavailable, application cache disabled", "addr", cfg.RedisAddr, "error", err)
		return cache.Noop{}, func() {}
	}

	slog.Info("Application cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	return r, func() { r.Close() }
}
