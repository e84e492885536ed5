package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"card-payment-gateway/internal/config"
	"card-payment-gateway/internal/domain/ports/adapter"
	"card-payment-gateway/internal/domain/ports/repository"
	"card-payment-gateway/internal/infra/adapters/bank"
	"card-payment-gateway/internal/infra/api"
	"card-payment-gateway/internal/infra/api/apiv1"
	"card-payment-gateway/internal/infra/currency"
	"card-payment-gateway/internal/infra/db/memory"
	pg "card-payment-gateway/internal/infra/db/postgres"
	"card-payment-gateway/internal/infra/logging"
	"card-payment-gateway/internal/infra/metrics"
	red "card-payment-gateway/internal/infra/redis"
	"card-payment-gateway/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfgPath, dev := config.ParseFlags()
	cfg, err := config.LoadConfig(cfgPath, dev)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Runtime.Dev {
		log.Printf("[DEV MODE] Enabled")
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.MustRegister()

	// ---- Redis (optional: cache + rate limit) ----
	var redisClient red.Client
	if cfg.Redis.URL != "" {
		redisClient, err = red.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer redisClient.Close()
	}

	// ---- Payment repository ----
	var payRepo repository.PaymentRepository
	if cfg.Database.URL != "" {
		pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 10)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pool.Close()
		payRepo = pg.NewPaymentRepo(pool)
		if redisClient != nil {
			payRepo = pg.NewPaymentRepoCacheDecorator(payRepo, redisClient, cfg.Redis.TTL)
		}
	} else {
		logger.Warn().Msg("database.url empty; using in-memory payment repository")
		payRepo = memory.NewSeededPaymentRepo()
	}

	// ---- Currency master data ----
	currencyRepo := currency.NewStaticRepo(cfg.Currencies)
	logger.Info().Strs("currencies", currencyRepo.Supported(ctx)).Msg("currency support loaded")

	// ---- Acquiring bank ----
	acq, err := bank.NewAcquirerClient(cfg.Acquirer.BaseURL, cfg.Acquirer.Path, cfg.Acquirer.Timeout)
	if err != nil {
		log.Fatalf("acquirer: %v", err)
	}

	// ---- Use cases ----
	paymentUC := usecase.NewPaymentUseCase(payRepo, currencyRepo, acq, logger)
	validator := usecase.NewPaymentValidator(adapter.SystemClock{})

	// ---- HTTP ----
	r := chi.NewRouter()
	srv := apiv1.NewServer(paymentUC, validator, logger)
	apiv1.Register(r, srv)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	mws := []api.Middleware{
		api.Recover(logger),
		api.TraceID(),
		api.RequestLog(logger),
		api.Timeout(30 * time.Second),
	}
	if cfg.Auth.Secret != "" {
		mws = append(mws, api.Auth(api.NewAuthManager(cfg.Auth.Secret, cfg.Auth.TTL)))
	}
	if cfg.RateLimit.Enabled && redisClient != nil {
		mws = append(mws, api.RateLimit(red.NewRateLimiter(redisClient), cfg.RateLimit, logger))
	}
	handler := api.Chain(r, mws...)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("payment gateway listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// ---- Graceful shutdown ----
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}
