// @title        Personal Site API
// @version      1.0
// @description  個人網站後端 API：部落格、興趣、帳號與密碼保險庫
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"personal-site/internal/cache"
	"personal-site/internal/content"
	"personal-site/internal/database"
	"personal-site/internal/media"
	"personal-site/internal/router"
	"personal-site/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "personal-site/docs" // 引入 swag 產出的 docs

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

// newValidator 註冊自訂的 slug 標籤
func newValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return content.SlugPattern.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

type config struct {
	DatabaseURL      string
	RedisAddr        string
	RedisDB          int
	RedisPassword    string
	TelegramBotToken string
	MediaRoot        string
	WorkerCount      int
	VaultSessionTTL  time.Duration
	ListenAddr       string
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func loadConfig() (*config, error) {
	cfg := &config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		MediaRoot:        "./media",
		WorkerCount:      1,
		VaultSessionTTL:  12 * time.Hour,
		ListenAddr:       ":8080",
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	redisDBStr := os.Getenv("REDIS_DB")
	if redisDBStr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_DB 未設定")
	}
	redisIndex, err := strconv.Atoi(redisDBStr)
	if err != nil {
		return nil, fmt.Errorf("無效的 REDIS_DB: %v", err)
	}
	cfg.RedisDB = redisIndex

	if v := os.Getenv("MEDIA_ROOT"); v != "" {
		cfg.MediaRoot = v
	}
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return nil, fmt.Errorf("無效的 WORKER_COUNT: %q", v)
		}
		cfg.WorkerCount = c
	}
	if v := os.Getenv("VAULT_SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("無效的 VAULT_SESSION_TTL: %q", v)
		}
		cfg.VaultSessionTTL = d
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	if err := os.MkdirAll(cfg.MediaRoot, 0o755); err != nil {
		return fmt.Errorf("無法建立 MEDIA_ROOT: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		log.Print("TELEGRAM_BOT_TOKEN 未設定，停用 Telegram 登入")
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = newValidator()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, redis, router.Deps{
		Media:            media.NewStorage(cfg.MediaRoot),
		Workers:          wp,
		TelegramBotToken: cfg.TelegramBotToken,
		VaultSessionTTL:  cfg.VaultSessionTTL,
	})

	e.Static("/media", cfg.MediaRoot)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.ListenAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
