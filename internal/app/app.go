package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pointledger/internal/cache"
	"github.com/GlebRadaev/pointledger/internal/config"
	"github.com/GlebRadaev/pointledger/internal/handlers"
	"github.com/GlebRadaev/pointledger/internal/member"
	"github.com/GlebRadaev/pointledger/internal/notify"
	"github.com/GlebRadaev/pointledger/internal/pg"
	"github.com/GlebRadaev/pointledger/internal/repo"
	"github.com/GlebRadaev/pointledger/internal/scheduler"
	"github.com/GlebRadaev/pointledger/internal/service"
	"github.com/GlebRadaev/pointledger/pkg/clients"
	"github.com/GlebRadaev/pointledger/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	pool  *pgxpool.Pool
	redis *redis.Client
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	sched *scheduler.Scheduler

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New(cfg *config.Config) *Application {
	return &Application{
		cfg:   cfg,
		errCh: make(chan error),
	}
}

// Services exposes the wired ledger once Init has succeeded.
func (a *Application) Services() *service.Services {
	return a.srv
}

// Init connects the stores and wires the ledger without serving traffic.
func (a *Application) Init(ctx context.Context) error {
	if err := logger.InitLogger(a.cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err := a.Migrate(ctx); err != nil {
		return err
	}
	txManager := pg.NewTXManager(a.pool)
	a.repo = repo.New(pg.New(a.pool))

	deps := service.Deps{
		Repos:     a.repo,
		TXManager: txManager,
	}

	if a.cfg.RedisAddress != "" {
		client, err := cache.Connect(ctx, a.cfg.RedisAddress)
		if err != nil {
			zap.L().Error("redis connection failed: ", zap.Error(err))
			return fmt.Errorf("can't connect to redis: %w", err)
		}
		a.redis = client
		deps.Locker = service.NewLocker(client)
		deps.Cache = cache.NewBalanceCache(client, a.cfg.BalanceCacheTTL)
	} else {
		zap.L().Warn("no redis configured, member locks are local to this instance")
		deps.Locker = service.NewLocker(nil)
	}

	if len(a.cfg.KafkaBrokers) > 0 {
		publisher, err := notify.NewKafkaPublisher(a.cfg.KafkaBrokers, a.cfg.KafkaTopic)
		if err != nil {
			return fmt.Errorf("can't build kafka publisher: %w", err)
		}
		deps.Publisher = publisher
	}

	if a.cfg.MemberServiceAddress != "" {
		deps.Members = member.New(a.cfg.MemberServiceAddress, clients.NewHTTPClient(0))
	}

	a.srv = service.New(a.cfg, deps)
	return nil
}

// Migrate opens the pool if needed and applies pending migrations.
func (a *Application) Migrate(ctx context.Context) error {
	if a.pool == nil {
		pool, err := getPgxpool(ctx, a.cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return fmt.Errorf("can't build pgx pool: %w", err)
		}
		a.pool = pool
	}
	if err := pg.RunMigrations(a.pool, log.Logger); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	if err := a.Init(ctx); err != nil {
		return err
	}
	a.api = handlers.New(a.srv, a.cfg.CORSOrigins)

	if err := a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if err := a.startScheduler(ctx); err != nil {
		return fmt.Errorf("can't start expiry scheduler: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startScheduler(ctx context.Context) error {
	hour, minute, err := a.cfg.SweepClock()
	if err != nil {
		return err
	}
	a.sched = scheduler.New(a.srv.Ledger, hour, minute)
	a.sched.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-a.sched.Done()
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if err := a.Close(); err != nil && appErr == nil {
		appErr = err
	}
	return appErr
}

// Close flushes pending notifications and releases connections.
func (a *Application) Close() error {
	var errs []error
	if a.srv != nil && a.srv.Dispatcher != nil {
		if err := a.srv.Dispatcher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close dispatcher: %w", err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
	return errors.Join(errs...)
}
