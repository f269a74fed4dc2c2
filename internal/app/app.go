package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/internal/config"
	"github.com/GlebRadaev/ipr/internal/handlers"
	"github.com/GlebRadaev/ipr/internal/mailer"
	"github.com/GlebRadaev/ipr/internal/pg"
	"github.com/GlebRadaev/ipr/internal/realtime"
	"github.com/GlebRadaev/ipr/internal/reconciler"
	"github.com/GlebRadaev/ipr/internal/repo"
	"github.com/GlebRadaev/ipr/internal/service"
	"github.com/GlebRadaev/ipr/pkg/logger"
)

// purgeSchedule drives expired verification code cleanup.
const purgeSchedule = "@every 10m"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Purger interface {
	Purge(ctx context.Context) (int64, error)
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	hub  *realtime.Hub
	rec  *reconciler.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.hub = realtime.NewHub()
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, cfg, a.hub, mailer.New(cfg.ResendAPIKey, cfg.MailFrom))
	a.api = handlers.New(a.srv, a.hub, cfg)
	a.rec = reconciler.New(cfg, a.srv.GroupService)

	a.startHub(ctx)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startReconciler(ctx)

	if err = a.startMaintenance(ctx, a.srv.VerificationService); err != nil {
		return fmt.Errorf("can't schedule maintenance: %w", err)
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
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHub(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.hub.Run(ctx)
	}()
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startReconciler(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.rec.RunOnce(ctx); err != nil {
			zap.L().Warn("initial reconcile pass failed", zap.Error(err))
		}
		a.rec.Start(ctx)
	}()
}

// startMaintenance schedules background cleanup until ctx is done.
func (a *Application) startMaintenance(ctx context.Context, purger Purger) error {
	c := cron.New()
	_, err := c.AddFunc(purgeSchedule, func() {
		n, err := purger.Purge(ctx)
		if err != nil {
			zap.L().Error("verification purge failed", zap.Error(err))
			return
		}
		if n > 0 {
			zap.L().Info("expired verification codes removed", zap.Int64("count", n))
		}
	})
	if err != nil {
		return err
	}
	c.Start()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		<-c.Stop().Done()
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

	return appErr
}
