// Command codelog appends the current 2FA code to a log, once per invocation
// (for cron) or every minute with -loop.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/attestkit/pkg/codelog"
	"github.com/dmitrymomot/attestkit/pkg/config"
	"github.com/dmitrymomot/attestkit/pkg/logger"
	"github.com/dmitrymomot/attestkit/pkg/redis"
	"github.com/dmitrymomot/attestkit/pkg/seedstore"
	"github.com/dmitrymomot/attestkit/pkg/totp"
)

func main() {
	loop := flag.Bool("loop", false, "keep running and log a code every interval")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *loop); err != nil {
		if errors.Is(err, codelog.ErrSeedMissing) {
			fmt.Println("Seed missing")
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// storeGenerator reads the seed on every call so a freshly provisioned seed
// is picked up without a restart.
type storeGenerator struct {
	store  *seedstore.Store
	engine *totp.Engine
}

func (g storeGenerator) Generate(ctx context.Context) (totp.Code, error) {
	sd, err := g.store.Load(ctx)
	if err != nil {
		return totp.Code{}, err
	}
	return g.engine.Generate(sd.String())
}

func run(ctx context.Context, loop bool) error {
	var (
		cfg      codelog.Config
		logCfg   logger.Config
		storeCfg seedstore.Config
	)
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if err := config.Load(&logCfg); err != nil {
		return err
	}
	if err := config.Load(&storeCfg); err != nil {
		return err
	}

	log := logger.New(logger.WithConfig(logCfg), logger.WithOutput(os.Stderr))

	var client goredis.UniversalClient
	if storeCfg.BackendName() == seedstore.BackendRedis {
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return err
		}
		c, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer c.Close()
		client = c
	}

	store, err := seedstore.FromConfig(storeCfg, client)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	l, err := codelog.New(storeGenerator{store: store, engine: totp.NewEngine()}, out,
		codelog.WithInterval(cfg.Interval),
		codelog.WithLogger(log),
	)
	if err != nil {
		return err
	}

	if !loop {
		return l.RunOnce(ctx)
	}
	log.InfoContext(ctx, "code logger started", slog.Duration("interval", cfg.Interval))
	return l.Run(ctx)
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
