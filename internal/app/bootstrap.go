package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/marketplace_vendor/config"
	cachemem "github.com/Gunvolt24/marketplace_vendor/internal/cache/memory"
	"github.com/Gunvolt24/marketplace_vendor/internal/kafka"
	"github.com/Gunvolt24/marketplace_vendor/internal/platform"
	"github.com/Gunvolt24/marketplace_vendor/internal/ports"
	"github.com/Gunvolt24/marketplace_vendor/internal/repo/postgres"
	rest "github.com/Gunvolt24/marketplace_vendor/internal/transport/http"
	"github.com/Gunvolt24/marketplace_vendor/internal/usecase"
	"github.com/Gunvolt24/marketplace_vendor/pkg/logger"
	"github.com/Gunvolt24/marketplace_vendor/pkg/metrics"
	"github.com/Gunvolt24/marketplace_vendor/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger // логгер
	HTTPServer      *http.Server // HTTP-сервер
	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.Config{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Клиент ядра платформы: воркфлоу + графовый read-слой.
	platformClient := platform.NewClient(platform.Config{
		BaseURL: cfg.Platform.BaseURL,
		Token:   cfg.Platform.Token,
		Timeout: cfg.Platform.Timeout,
	})

	// Продюсер событий Kafka.
	producer := kafka.NewProducer(&kafka.ProducerConfig{
		Brokers:      cfg.Kafka.Brokers,
		Topic:        cfg.Kafka.Topic,
		BatchTimeout: cfg.Kafka.BatchTimeout,
		WriteTimeout: cfg.Kafka.WriteTimeout,
	})

	// Сборка зависимостей доменного слоя.
	sellerCache := cachemem.NewSellerCache(cfg.Cache.Capacity, cfg.Cache.TTL)
	sellerRepo := postgres.NewSellerRepository(pool)
	linkRepo := postgres.NewLinkRepository(pool)
	reader := usecase.NewScopedReader(platformClient)

	vendorService := usecase.NewVendorService(
		sellerRepo, sellerCache, linkRepo, platformClient, producer, reader, logg)
	orderSetService := usecase.NewOrderSetService(platformClient, logg)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(vendorService, orderSetService, logg)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := producer.Close(); err != nil {
			logg.Warnf(ctx, "kafka producer close error: %v", err)
		}

		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки и останавливает его.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
