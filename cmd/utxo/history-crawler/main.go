package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/metrics"
	rpcclient2 "github.com/goodnatureofminers/blockinsight7000-history/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/fault"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/neo"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/repository"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/service/crawler"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Store         string        `long:"store" env:"UTXO_HISTORY_STORE" description:"ledger store backend" choice:"clickhouse" choice:"mongo" default:"clickhouse"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"UTXO_HISTORY_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	MongoURI      string        `long:"mongo-uri" env:"UTXO_HISTORY_MONGO_URI" description:"MongoDB connection URI"`
	MongoDatabase string        `long:"mongo-database" env:"UTXO_HISTORY_MONGO_DATABASE" description:"MongoDB database" default:"neo"`
	Coin          model.Coin    `long:"coin" env:"UTXO_HISTORY_COIN" description:"coin name" default:"NEO"`
	Network       model.Network `long:"network" env:"UTXO_HISTORY_NETWORK" description:"network name" required:"true"`
	RPCURL        string        `long:"rpc-url" env:"UTXO_HISTORY_RPC_URL" description:"node JSON-RPC URL" default:"http://127.0.0.1:10332"`
	RPCUser       string        `long:"rpc-user" env:"UTXO_HISTORY_RPC_USER" description:"node RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"UTXO_HISTORY_RPC_PASSWORD" description:"node RPC password"`
	RPCRateLimit  int           `long:"rpc-rate-limit" env:"UTXO_HISTORY_RPC_RATE_LIMIT" description:"max RPC requests per second, 0 for unlimited" default:"0"`
	MaxBatchSize  int           `long:"max-batch-size" env:"UTXO_HISTORY_MAX_BATCH_SIZE" description:"max heights per iteration" default:"1000"`
	Workers       int           `long:"workers" env:"UTXO_HISTORY_WORKERS" description:"max concurrent requests per phase" default:"100"`
	IdleInterval  time.Duration `long:"idle-interval" env:"UTXO_HISTORY_IDLE_INTERVAL" description:"wait between polls when caught up" default:"500ms"`
	MetricsAddr   string        `long:"metrics-addr" env:"UTXO_HISTORY_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}
	if cfg.MaxBatchSize <= 0 {
		logger.Fatal("max batch size must be positive", zap.Int("max_batch_size", cfg.MaxBatchSize))
	}
	if cfg.Workers <= 0 {
		logger.Fatal("workers must be positive", zap.Int("workers", cfg.Workers))
	}

	if err := run(ctx, cfg, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("utxo history crawler stopped")
			return
		}
		logger.Fatal("utxo history crawler failed",
			zap.Stringer("fault", fault.KindOf(err)),
			zap.Error(err),
		)
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	store, err := repository.Open(ctx, repository.Config{
		Kind:          repository.Kind(cfg.Store),
		ClickhouseDSN: cfg.ClickhouseDSN,
		MongoURI:      cfg.MongoURI,
		MongoDatabase: cfg.MongoDatabase,
	})
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close ledger store", zap.Error(err))
		}
	}()

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := rpcclient2.NewObservedClient(
		rpcClient,
		metrics.NewRPCClient(cfg.Coin, cfg.Network),
		rpcclient2.NewLimiter(cfg.RPCRateLimit),
	)

	svc, err := crawler.NewCrawlerService(
		neo.NewClient(rpc),
		store,
		metrics.NewCrawler(cfg.Coin, cfg.Network),
		crawler.Config{
			Coin:         cfg.Coin,
			Network:      cfg.Network,
			MaxBatchSize: cfg.MaxBatchSize,
			WorkerCount:  cfg.Workers,
			IdleInterval: cfg.IdleInterval,
		},
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
