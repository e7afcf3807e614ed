package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"aromashop/internal/checkout"
	"aromashop/internal/clock"
	"aromashop/internal/config"
	httpapi "aromashop/internal/http"
	"aromashop/internal/logging"
	"aromashop/internal/metrics"
	"aromashop/internal/notify"
	"aromashop/internal/repository"
	"aromashop/internal/service"

	_ "aromashop/docs"
)

const (
	sessionIdle     = 24 * time.Hour
	evictEvery      = 10 * time.Minute
	shutdownTimeout = 5 * time.Second
)

// @title Aromashop API
// @version 1.0
// @description Storefront of a single product: cart, checkout, confirmation and order admin.
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", os.Getenv("AROMASHOP_CONFIG"), "path to a yaml/json/env config file")
	flag.Parse()

	// prices travel as JSON numbers, the way the storefront always stored them
	decimal.MarshalJSONWithoutQuotes = true

	// Load validates
	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	ctx := log.WithContext(context.Background())

	store, health, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("open store")
	}
	defer closeStore()

	variant, err := checkout.ParseVariant(cfg.CheckoutVariant)
	if err != nil {
		log.Fatal().Err(err).Msg("checkout variant")
	}

	m := metrics.New()
	clk := clock.NewSystem()

	var blocking notify.BlockingNotifier = notify.Log{}
	if cfg.NotifyChannel == config.ChannelTelegram {
		blocking = notify.NewTelegram(&http.Client{Timeout: cfg.NotifyTimeout}, cfg.TelegramAPIURL, cfg.TelegramBotToken, cfg.TelegramChatID)
	}

	var sinks []notify.Sink
	if len(cfg.KafkaBrokers) > 0 {
		ks := notify.NewKafkaSink(notify.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
		defer func() {
			if err := ks.Close(); err != nil {
				log.Warn().Err(err).Msg("close kafka writer")
			}
		}()
		sinks = append(sinks, ks)
	}
	integrations := notify.NewIntegrations(store, &http.Client{Timeout: cfg.IntegrationTimeout}, cfg.IntegrationTimeout, m, sinks...)

	var ids service.IDGenerator = service.NewLegacyIDs(clk)
	if cfg.OrderIDScheme == config.SchemeUUID {
		ids = service.UUIDIDs{}
	}

	sessions := service.NewSessions(store, clk)
	productsSvc := service.NewProductService(store)
	storefrontSvc := service.NewStorefrontService(sessions, productsSvc, variant)
	ordersSvc := service.NewOrderService(service.OrderDeps{
		Sessions:      sessions,
		Products:      productsSvc,
		Orders:        repository.NewDocumentOrders(store),
		Blocking:      blocking,
		BestEffort:    integrations,
		IDs:           ids,
		Clock:         clk,
		Metrics:       m,
		Variant:       variant,
		NotifyTimeout: cfg.NotifyTimeout,
	})

	srv := httpapi.NewServer(httpapi.Deps{
		Storefront:    storefrontSvc,
		Orders:        ordersSvc,
		Products:      productsSvc,
		Metrics:       m,
		Logger:        log,
		AdminUser:     cfg.AdminUser,
		AdminPassword: cfg.AdminPassword,
		Health:        health,
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	evictCtx, stopEvict := context.WithCancel(ctx)
	defer stopEvict()
	go func() {
		t := time.NewTicker(evictEvery)
		defer t.Stop()
		for {
			select {
			case <-evictCtx.Done():
				return
			case <-t.C:
				if n := sessions.Evict(sessionIdle); n > 0 {
					log.Debug().Int("evicted", n).Int("active", sessions.Len()).Msg("idle sessions evicted")
				}
			}
		}
	}()

	go func() {
		log.Info().Str("addr", httpServer.Addr).Str("store", cfg.StoreBackend).Str("notify", cfg.NotifyChannel).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	// let in-flight integration forwards finish before the clients close
	ordersSvc.Wait()
	log.Info().Msg("server stopped")
}

// openStore builds the configured backend. health pings it, closeFn releases its client.
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, func(context.Context) error, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store := repository.NewRedisStore(client, cfg.RedisPrefix)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = client.Close()
			return nil, nil, nil, err
		}
		return store, store.Ping, func() { _ = client.Close() }, nil
	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, nil, err
		}
		store := repository.NewPostgresStore(pool)
		initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := store.EnsureSchema(initCtx); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		return store, store.Ping, pool.Close, nil
	default:
		return repository.NewMemoryStore(), nil, func() {}, nil
	}
}
