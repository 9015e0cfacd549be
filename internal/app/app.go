package app

import (
	"context"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Kajalkumari31/ministore/config"
	"github.com/Kajalkumari31/ministore/internal/catalog"
)

type Application struct {
	appConfig *config.AppConfig
	store     catalog.ProductStore
	service   *catalog.Service
	sched     *cron.Cron
	startedAt time.Time
}

// Ensure Application implements all interfaces
var (
	_ StoreProvider   = (*Application)(nil)
	_ ConfigProvider  = (*Application)(nil)
	_ ServiceProvider = (*Application)(nil)
	_ AppContext      = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig, startedAt: time.Now()}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() catalog.ProductStore {
	return a.store
}

func (a *Application) Service() *catalog.Service {
	return a.service
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// OverrideStore replaces the application's product store (used in tests).
func (a *Application) OverrideStore(store catalog.ProductStore) {
	a.store = store
	a.service = catalog.NewService(store)
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger(cfg)

	store, err := openProductStore(cfg)
	if err != nil {
		zap.S().Fatalf("product store init failed: %v", err)
	}
	a.store = store
	a.service = catalog.NewService(store)
	zap.S().Infof("catalog store ready, type: %s", cfg.Database.Type)

	a.checkCatalog()
	a.initJob()
}

// initLogger configures the global zap logger, with lumberjack rotation when
// file output is enabled.
func (a *Application) initLogger(cfg *config.AppConfig) {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.GetLogDir() + "/" + cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// InitDb drops the product collection, recreates it and re-seeds the
// default catalog.
func (a *Application) InitDb() {
	if err := a.store.Reset(context.Background()); err != nil {
		zap.S().Errorf("catalog reset failed: %v", err)
		return
	}
	zap.L().Warn("catalog dropped and recreated")
	a.checkCatalog()
}

// Start scheduler job runner
func (a *Application) StartBackgroundJobs(ctx context.Context) {
	a.sched.Start()
	go func() {
		<-ctx.Done()
		a.sched.Stop()
	}()
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.store != nil {
		_ = a.store.Close()
	}
	_ = zap.L().Sync()
}
