package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Avangel08/furniro-sub001/internal/api/http"
	"github.com/Avangel08/furniro-sub001/internal/api/http/handlers"
	"github.com/Avangel08/furniro-sub001/internal/auth"
	"github.com/Avangel08/furniro-sub001/internal/config"
	"github.com/Avangel08/furniro-sub001/internal/domain"
	"github.com/Avangel08/furniro-sub001/internal/events"
	"github.com/Avangel08/furniro-sub001/internal/observability"
	"github.com/Avangel08/furniro-sub001/internal/persistence"
	"github.com/Avangel08/furniro-sub001/internal/repository"
	"github.com/Avangel08/furniro-sub001/internal/service"
	"github.com/Avangel08/furniro-sub001/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), persistence.DefaultMigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	readiness := map[string]handlers.Pinger{"postgres": pg}

	var denylist repository.TokenDenylist
	if cfg.Auth.RefreshDenylist {
		redis, err := persistence.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Fatal("refresh denylist enabled but redis is unavailable", zap.Error(err))
		}
		defer redis.Close()
		denylist = repository.NewRedisTokenDenylist(redis.Client)
		readiness["redis"] = redis
	}

	pool := pg.PoolHandle()
	staffRepo := repository.NewStaffRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	bannerRepo := repository.NewBannerRepository(pool)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	sessions := service.NewSessionService(cfg.Auth, service.SessionDependencies{
		StaffRepo:    staffRepo,
		CustomerRepo: customerRepo,
		Denylist:     denylist,
		Dispatcher:   dispatcher,
		Metrics:      metrics,
		Logger:       logger,
	})
	scheduler := service.NewBannerScheduler(bannerRepo, dispatcher, metrics, logger, nil)

	if cfg.Banner.SchedulerEnabled {
		go worker.RunBannerScheduler(ctx, scheduler, cfg.Banner.SchedulerInterval(), logger)
	}

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, readiness),
		StaffSession:    handlers.NewSessionHandler(sessions, domain.PrincipalStaff, cfg.Auth.CookieSecure),
		CustomerSession: handlers.NewSessionHandler(sessions, domain.PrincipalCustomer, cfg.Auth.CookieSecure),
		Banners:         handlers.NewBannerHandler(scheduler),
		AuthMiddleware:  auth.NewAuthMiddleware(sessions.TokenManager(), staffRepo),
		Metrics:         metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
