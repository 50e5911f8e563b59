// Command attestd serves seed provisioning and TOTP endpoints over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/attestkit/modules/twofa"
	"github.com/dmitrymomot/attestkit/pkg/clientip"
	"github.com/dmitrymomot/attestkit/pkg/config"
	"github.com/dmitrymomot/attestkit/pkg/envelope"
	"github.com/dmitrymomot/attestkit/pkg/environment"
	"github.com/dmitrymomot/attestkit/pkg/httpserver"
	"github.com/dmitrymomot/attestkit/pkg/logger"
	"github.com/dmitrymomot/attestkit/pkg/metrics"
	"github.com/dmitrymomot/attestkit/pkg/ratelimiter"
	"github.com/dmitrymomot/attestkit/pkg/redis"
	"github.com/dmitrymomot/attestkit/pkg/requestid"
	"github.com/dmitrymomot/attestkit/pkg/seedstore"
	"github.com/dmitrymomot/attestkit/svc/attest"
)

type appConfig struct {
	Env              string `env:"APP_ENV" envDefault:"development"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"attestd"`
	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"attest"`
	RateLimitStore   string `env:"RATE_LIMIT_STORE" envDefault:"memory"` // memory | redis
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("attestd stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg    appConfig
		logCfg    logger.Config
		srvCfg    httpserver.Config
		storeCfg  seedstore.Config
		attestCfg attest.Config
		twofaCfg  twofa.Config
		limitCfg  ratelimiter.Config
		ipCfg     clientip.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&logCfg) },
		func() error { return config.Load(&srvCfg) },
		func() error { return config.Load(&storeCfg) },
		func() error { return config.Load(&attestCfg) },
		func() error { return config.Load(&twofaCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&ipCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	log := logger.New(
		logger.WithEnvironment(environment.Parse(appCfg.Env), appCfg.ServiceName),
		logger.WithConfig(logCfg),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	var rdb *goredis.Client
	limitStoreName := strings.ToLower(strings.TrimSpace(appCfg.RateLimitStore))
	if storeCfg.BackendName() == seedstore.BackendRedis || limitStoreName == "redis" {
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()
		rdb = client
	}

	var storeClient goredis.UniversalClient
	if rdb != nil {
		storeClient = rdb
	}
	store, err := seedstore.FromConfig(storeCfg, storeClient)
	if err != nil {
		return err
	}

	ownerKey, err := envelope.LoadPrivateKeyFile(attestCfg.OwnerKeyPath)
	if err != nil {
		return err
	}

	m := metrics.New(appCfg.MetricsNamespace)
	svc, err := attest.New(ownerKey, store, attest.WithLogger(log), attest.WithRecorder(m))
	if err != nil {
		return err
	}

	var limitStore ratelimiter.Store
	switch limitStoreName {
	case "redis":
		limitStore = ratelimiter.NewRedisStore(rdb, "attest:ratelimit")
	case "memory", "":
		ms := ratelimiter.NewMemoryStore()
		defer ms.Close()
		limitStore = ms
	default:
		return errors.New("unknown RATE_LIMIT_STORE: " + appCfg.RateLimitStore)
	}
	bucket, err := ratelimiter.NewBucket(limitStore, limitCfg)
	if err != nil {
		return err
	}

	resolver := clientip.NewFromConfig(ipCfg)
	router := twofa.Router(twofa.RouterConfig{
		Service: twofa.NewService(twofaCfg, svc,
			twofa.WithLogger(log),
			twofa.WithVerifyGuard(twofa.VerifyLimiter(bucket, resolver, log)),
		),
		Logger:      log,
		Metrics:     m,
		ClientIP:    resolver,
		ReadyChecks: []httpserver.Check{store.Check},
	})

	log.InfoContext(ctx, "attestd configured",
		logger.Store(storeCfg.BackendName()),
		logger.KeyBits(ownerKey.N.BitLen()),
		slog.Bool("sealed", store.Sealed()),
	)

	return httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log)).Run(ctx, router)
}
