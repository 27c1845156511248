package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/eventistan/internal/booking"
	"github.com/iliyamo/eventistan/internal/config"
	"github.com/iliyamo/eventistan/internal/fixtures"
	"github.com/iliyamo/eventistan/internal/handler"
	"github.com/iliyamo/eventistan/internal/logger"
	"github.com/iliyamo/eventistan/internal/middleware"
	"github.com/iliyamo/eventistan/internal/queue"
	"github.com/iliyamo/eventistan/internal/repository"
	"github.com/iliyamo/eventistan/internal/router"
	"github.com/iliyamo/eventistan/internal/service"
	"github.com/iliyamo/eventistan/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.AsJSON); err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error(ctx, "server stopped", logger.ErrorF(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	// Redis is optional: without it caching and rate limiting are skipped
	// and sessions live in memory.
	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil {
		logger.Warn(ctx, "redis unavailable, running without cache and rate limit")
	} else {
		defer func() { _ = rdb.Close() }()
	}

	// ---- Repositories ----
	events := repository.NewEventRepo(fixtures.Events())
	vendors := repository.NewVendorRepo(fixtures.Vendors(), fixtures.VendorReviews())
	methods := repository.NewPaymentMethodRepo(fixtures.PaymentMethods())
	users, err := repository.NewUserRepo(fixtures.Users(), cfg.Auth.DemoPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	// ---- Services ----
	var opts []booking.Option
	if cfg.RabbitMQ.Enabled() {
		opts = append(opts, booking.WithNotifier(service.NewBookingPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)))
	}
	bookings := booking.NewService(events, methods, cfg.Booking.ProcessingDelay, cfg.Booking.Wallet(), opts...)
	sessions := newSessionStore(cfg.Session, rdb)

	// ---- HTTP ----
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestLogger())
	if cfg.RateLimit.Enabled {
		e.Use(middleware.NewTokenBucket(cfg.RateLimit, rdb, cfg.Auth.JWTSecret))
	}

	router.RegisterRoutes(e)
	router.RegisterPublic(e,
		handler.NewEventHandler(events, methods, bookings),
		handler.NewVendorHandler(vendors),
		cfg.Auth.JWTSecret,
		middleware.NewRedisCache(cfg.Cache, rdb),
	)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg.Auth, cfg.Booking.ForgotDelay, users, sessions), cfg.Auth.JWTSecret)
	router.RegisterSessions(e, handler.NewSessionHandler(sessions), cfg.Auth.JWTSecret)
	router.RegisterOrganizer(e,
		handler.NewOrganizerHandler(events, users),
		handler.NewFormHandler(users),
		cfg.Auth.JWTSecret,
	)

	g, ctx := errgroup.WithContext(ctx)

	addr := ":" + cfg.App.Port
	g.Go(func() error {
		logger.Info(ctx, "listening", logger.String("addr", addr), logger.String("env", cfg.App.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.App.ShutdownTimeout)
		defer cancel()
		logger.Info(shutdownCtx, "shutting down")
		return e.Shutdown(shutdownCtx)
	})

	if cfg.RabbitMQ.Enabled() && cfg.RabbitMQ.ConsumerEnabled {
		consumer := queue.NewBookingConsumer(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, cfg.RabbitMQ.LogDir)
		g.Go(func() error { return consumer.Run(ctx) })
	}

	return g.Wait()
}

func newSessionStore(cfg config.SessionConfig, rdb *redis.Client) session.Store {
	if rdb == nil {
		return session.NewMemoryStore(cfg.TTL)
	}
	return session.NewRedisStore(rdb, cfg.Prefix, cfg.TTL)
}
