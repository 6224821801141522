package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/marcomarassi/note-keeper-service/internal/dao"
	"github.com/marcomarassi/note-keeper-service/internal/domain"
	"github.com/marcomarassi/note-keeper-service/internal/service"
	"github.com/marcomarassi/note-keeper-service/internal/session"
	pkgapp "github.com/marcomarassi/note-keeper-service/pkg/app"
	"github.com/marcomarassi/note-keeper-service/pkg/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App is the application container. It owns the repositories, the
// services, the session machinery and the storage client.
type App struct {
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	NoteRepo domain.NoteRepository
	UserRepo domain.UserRepository

	UserService service.UserService
	NoteService service.NoteService

	Hub          *session.Hub
	Sessions     *session.Controller
	Storage      storage.Storager
	TokenManager pkgapp.TokenManager

	shutdownCh chan struct{}
	cancelRun  context.CancelFunc
	wg         sync.WaitGroup
}

// NewApp wires the container from its injected dependencies.
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:     cfg,
		logger:     logger,
		DB:         db,
		shutdownCh: make(chan struct{}),
	}

	a.Dao = dao.New(db)

	store, err := storage.NewClient(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}
	a.Storage = store

	a.TokenManager = pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Issuer:    "note-keeper-service",
		Expiry:    cfg.GetTokenExpiry(),
	})

	a.NoteRepo = dao.NewNoteRepository(a.Dao)
	a.UserRepo = dao.NewUserRepository(a.Dao)

	svcConfig := &service.ServiceConfig{
		User: service.UserConfig{
			RegisterIsEnable: cfg.User.RegisterIsEnable,
		},
	}

	a.Hub = session.NewHub(64, logger)
	a.NoteService = service.NewNoteService(a.NoteRepo, a.Storage, logger)
	a.UserService = service.NewUserService(a.UserRepo, a.TokenManager, a.Hub, logger, svcConfig)

	a.Sessions = session.NewController(a.NoteService, a.Hub, &session.Config{
		BannerTTL: cfg.GetBannerTTL(),
	}, logger)

	runCtx, cancel := context.WithCancel(context.Background())
	a.cancelRun = cancel
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.Sessions.Run(runCtx)
	}()

	logger.Info("app container initialized")
	return a, nil
}

func (a *App) Config() *AppConfig {
	return a.config
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}

func (a *App) GetAuthTokenKey() string {
	return a.config.Security.AuthTokenKey
}

func (a *App) IsProductionMode() bool {
	return a.config.Log.Production
}

// Version reports the build information.
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// Close releases the database connection.
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("database connection closed")
	}
	return nil
}

// DefaultShutdownTimeout bounds a Shutdown with a nil context.
const DefaultShutdownTimeout = 30 * time.Second

// Shutdown stops the session controller, the hub and the database, in
// that order.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("app container shutting down")

	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
	}

	select {
	case <-a.shutdownCh:
		return nil
	default:
		close(a.shutdownCh)
	}

	a.cancelRun()
	a.Hub.Close()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	var errs []error
	select {
	case <-done:
	case <-ctx.Done():
		a.logger.Warn("shutdown timeout waiting for background operations")
		errs = append(errs, fmt.Errorf("background operations timeout: %w", ctx.Err()))
	}

	if err := a.Close(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown completed with %d errors: %v", len(errs), errs)
	}

	a.logger.Info("app container shutdown completed")
	return nil
}

// IsShuttingDown reports whether Shutdown has started.
func (a *App) IsShuttingDown() bool {
	select {
	case <-a.shutdownCh:
		return true
	default:
		return false
	}
}

func (a *App) ShutdownCh() <-chan struct{} {
	return a.shutdownCh
}
