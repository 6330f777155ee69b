package main

import (
	"context"
	"fmt"

	"planetary-api/internal/cache"
	"planetary-api/internal/config"
	"planetary-api/internal/database"
	"planetary-api/internal/logger"
	"planetary-api/internal/mailer"
	"planetary-api/internal/middleware"
	"planetary-api/internal/router"
	"planetary-api/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "planetary-api/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newLogger       = logger.New
	openDB          = database.Open
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	newMailer       = func(cfg mailer.Config) (mailer.Mailer, error) { return mailer.NewSMTP(cfg) }
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
)

func mailConfig(cfg *config.Config) mailer.Config {
	return mailer.Config{
		Host:     cfg.MailHost,
		Port:     cfg.MailPort,
		Username: cfg.MailUsername,
		Password: cfg.MailPassword,
		From:     cfg.MailFrom,
		TLS:      cfg.MailTLS,
		Timeout:  cfg.MailTimeout,
	}
}

// newServer 建立 Echo 實例並掛上中介層與路由
func newServer(cfg *config.Config, log *zap.Logger, deps router.Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = cfg.Debug
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())

	router.Setup(e, deps)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e
}

// run 啟動 HTTP 服務，直到 server 結束
func run(ctx context.Context, cfg *config.Config) error {
	log, err := newLogger(cfg.LogLevel, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := openDB(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	if err := runMigrationsFn(db); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	var cch cache.Cache = cache.Nop{}
	if cfg.RedisAddr != "" {
		cch, err = newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
	} else {
		log.Info("redis disabled, planet cache off")
	}
	defer cch.Close()

	m, err := newMailer(mailConfig(cfg))
	if err != nil {
		return fmt.Errorf("mailer 設定錯誤: %w", err)
	}
	if cfg.MailAsync {
		wp := newWorkerPool(cfg.WorkerCount, log)
		defer wp.Stop()
		m = mailer.NewAsync(m, wp, log, cfg.MailTimeout)
	}

	e := newServer(cfg, log, router.Deps{
		DB:       db,
		Cache:    cch,
		Mailer:   m,
		Log:      log,
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: cfg.JWTTTL,
		CacheTTL: cfg.CacheTTL,
	})

	log.Info("starting server",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("driver", cfg.DatabaseDriver),
		zap.Bool("mail_async", cfg.MailAsync),
	)
	return startServer(e, cfg.HTTPAddr)
}
