package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"roomBooker/internal/booking"
	"roomBooker/internal/bootstrap"
	"roomBooker/internal/config"
	"roomBooker/internal/http-server/middleware/mwratelimit"
	"roomBooker/internal/http-server/router"
	"roomBooker/internal/lib/logger/handlers/slogpretty"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/storage/catalog"
	"roomBooker/internal/storage/memory"
	"roomBooker/internal/storage/postgres"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting room booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	windows, err := cfg.Booking.Windows()
	if err != nil {
		log.Error("invalid booking windows", sl.Err(err))
		os.Exit(1)
	}

	resources := catalog.New()
	store := memory.New(memory.WithWindows(windows))
	bookings := booking.New(log, store)

	var archive *postgres.Storage
	if cfg.Database.Enabled {
		archive, err = postgres.InitDB(&cfg.Database)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			os.Exit(1)
		}

		if err = restore(archive, resources, store); err != nil {
			log.Error("failed to restore archived state", sl.Err(err))
			os.Exit(1)
		}

		log.Info("archived state restored",
			slog.Int("resources", len(resources.List(""))),
			slog.Int("bookings", len(store.GetAllBookings())),
		)
	}

	if cfg.Booking.Seed && len(resources.List("")) == 0 {
		if err = bootstrap.Seed(resources, store, time.Now()); err != nil {
			log.Error("failed to seed demo data", sl.Err(err))
			os.Exit(1)
		}

		log.Info("demo data seeded")
	}

	limiter := mwratelimit.NewLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TTL)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go limiter.Run(sweepCtx)

	handler := router.New(log, router.Deps{
		Catalog: resources,
		Booking: bookings,
		Limiter: limiter,
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})

	if archive != nil {
		go func() {
			ticker := time.NewTicker(cfg.Booking.SnapshotInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					if err := archive.SaveSnapshot(resources.List(""), store.GetAllBookings()); err != nil {
						log.Error("failed to save snapshot", sl.Err(err))
					}
				case <-done:
					return
				}
			}
		}()
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(done)
	stopSweep()

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if archive == nil {
		return
	}

	if err = archive.SaveSnapshot(resources.List(""), store.GetAllBookings()); err != nil {
		log.Error("failed to save final snapshot", sl.Err(err))
	}

	if err = archive.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func restore(archive *postgres.Storage, resources *catalog.Catalog, store *memory.Storage) error {
	archived, err := archive.LoadResources()
	if err != nil {
		return err
	}

	for _, r := range archived {
		if err = resources.Create(r); err != nil {
			return err
		}
	}

	bookings, err := archive.LoadBookings()
	if err != nil {
		return err
	}

	return store.Restore(bookings)
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
