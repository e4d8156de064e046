package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/vitebridge/internal/config"
	"github.com/gabapcia/vitebridge/internal/handlers/cli"
	"github.com/gabapcia/vitebridge/internal/infra/notifier/webhook"
	"github.com/gabapcia/vitebridge/internal/infra/storage/redis"
	"github.com/gabapcia/vitebridge/internal/nodeexec"
	"github.com/gabapcia/vitebridge/internal/pkg/logger"
	"github.com/gabapcia/vitebridge/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/vitebridge/internal/pkg/transport/http"
	"github.com/gabapcia/vitebridge/internal/txlistener"
	"github.com/gabapcia/vitebridge/internal/walletops"

	"go.uber.org/zap/zapcore"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		// The failed result was already printed.
		if !errors.Is(err, cli.ErrOperationFailed) {
			fmt.Fprintln(os.Stderr, "vitebridge:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName, telemetry.WithServiceVersion(cfg.ServiceVersion))
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()

			if err := shutdown(ctx); err != nil {
				logger.Warn(ctx, "telemetry shutdown failed", "error", err)
			}
		}()
	}

	// Stdout carries command results.
	logOpts := []logger.Option{logger.WithLevel(cfg.LogLevel), logger.WithOutput(zapcore.Lock(os.Stderr))}
	if lp := telemetry.LoggerProvider(); lp != nil {
		logOpts = append(logOpts, logger.WithLoggerProvider(lp))
	}
	if err := logger.Init(logOpts...); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	runner := nodeexec.NewRunner(nodeexec.WithForwardLogs(cfg.ForwardToolLogs))
	tool := nodeexec.Tool{Runtime: cfg.NodeBinary, Script: cfg.ScriptPath}

	ops := walletops.New(tool, runner,
		walletops.WithMaxAttempts(cfg.MaxAttempts),
		walletops.WithRetryDelay(cfg.RetryDelay),
		walletops.WithSendRetryDelay(cfg.SendRetryDelay),
		walletops.WithTxStateAttempts(cfg.TxStateAttempts),
		walletops.WithTxStateDelay(cfg.TxStateDelay),
	)

	listenerOpts := []txlistener.Option{txlistener.WithClaimTTL(cfg.ListenerClaimTTL)}
	if cfg.RedisAddr != "" {
		store, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer func() { _ = store.Close() }()

		listenerOpts = append(listenerOpts, txlistener.WithIdempotencyGuard(store))
	}
	listener := txlistener.New(ops, listenerOpts...)

	var consumer txlistener.Consumer
	if cfg.WebhookURL != "" {
		consumer = webhook.New(cfg.WebhookURL, transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.WebhookTimeout),
			transporthttp.WithUserAgent(cfg.ServiceName),
		))
	}

	return cli.Run(ctx, ops, listener, consumer)
}
