package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashitosh07/monad-explorer/internal/clock"
	"github.com/ashitosh07/monad-explorer/internal/fallback"
	"github.com/ashitosh07/monad-explorer/internal/ledger"
	"github.com/ashitosh07/monad-explorer/internal/metrics"
	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/ashitosh07/monad-explorer/internal/search"
	"github.com/ashitosh07/monad-explorer/internal/source"
	"github.com/ashitosh07/monad-explorer/internal/telemetry"
	"github.com/ashitosh07/monad-explorer/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	Addr    string        `long:"addr" env:"EXPLORER_ADDR" description:"HTTP listen address" default:":8000"`
	Network model.Network `long:"network" env:"EXPLORER_NETWORK" description:"network name" default:"testnet"`

	RPCURL     string        `long:"rpc-url" env:"MONAD_RPC_URL" description:"ledger node JSON-RPC endpoint"`
	RPCTimeout time.Duration `long:"rpc-timeout" env:"MONAD_RPC_TIMEOUT" description:"timeout for a single ledger call" default:"10s"`

	SourceURL       string        `long:"source-url" env:"EXPLORER_SOURCE_URL" description:"external data API base URL"`
	SourceAPIKey    string        `long:"source-api-key" env:"EXPLORER_SOURCE_API_KEY" description:"external data API key"`
	SourceKeyHeader string        `long:"source-key-header" env:"EXPLORER_SOURCE_KEY_HEADER" description:"header carrying the API key" default:"X-API-KEY"`
	SourceTimeout   time.Duration `long:"source-timeout" env:"EXPLORER_SOURCE_TIMEOUT" description:"timeout for a single external call" default:"10s"`
	SourceRPS       int           `long:"source-rps" env:"EXPLORER_SOURCE_RPS" description:"outbound requests per second to the external API, 0 disables the limit" default:"10"`
	SourcesFile     string        `long:"sources-file" env:"EXPLORER_SOURCES_FILE" description:"YAML table overriding per-category external paths"`

	PollInterval    time.Duration `long:"poll-interval" env:"EXPLORER_POLL_INTERVAL" description:"snapshot refresh interval" default:"10m"`
	PollTimeout     time.Duration `long:"poll-timeout" env:"EXPLORER_POLL_TIMEOUT" description:"deadline for one poll cycle" default:"2m"`
	ProviderTimeout time.Duration `long:"provider-timeout" env:"EXPLORER_PROVIDER_TIMEOUT" description:"deadline for one provider attempt" default:"10s"`
	WindowSize      int           `long:"window-size" env:"EXPLORER_WINDOW_SIZE" description:"blocks sampled per cycle" default:"20"`
	HistorySize     int           `long:"history-size" env:"EXPLORER_HISTORY_SIZE" description:"samples kept per history series" default:"30"`
	BlockCacheBytes int           `long:"block-cache-bytes" env:"EXPLORER_BLOCK_CACHE_BYTES" description:"block summary cache size, negative disables it" default:"0"`
	SearchTimeout   time.Duration `long:"search-timeout" env:"EXPLORER_SEARCH_TIMEOUT" description:"deadline for one search" default:"15s"`
	SyntheticSeed   uint64        `long:"synthetic-seed" env:"EXPLORER_SYNTHETIC_SEED" description:"seed of the synthetic data tier" default:"7000"`

	RateLimit float64 `long:"rate-limit" env:"EXPLORER_RATE_LIMIT" description:"requests per second per client, 0 disables the limit" default:"10"`
	RateBurst int     `long:"rate-burst" env:"EXPLORER_RATE_BURST" description:"request burst per client" default:"20"`
}

const (
	ledgerProbeAttempts = 3
	ledgerProbeBackoff  = 2 * time.Second
)

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

	if cfg.RPCURL == "" {
		logger.Fatal("ledger endpoint is required", zap.Error(fmt.Errorf("rpc-url: %w", model.ErrMisconfigured)))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("explorer api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	node, err := ledger.Dial(ctx, cfg.RPCURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrMisconfigured, err)
	}
	defer node.Close()
	ledgerClient := ledger.NewClient(
		ledger.NewObservedNode(node, metrics.NewLedgerClient(cfg.Network)),
		cfg.RPCTimeout,
	)
	probeLedger(ctx, ledgerClient, logger)

	paths, err := source.LoadPaths(cfg.SourcesFile)
	if err != nil {
		return fmt.Errorf("load sources: %w: %w", model.ErrMisconfigured, err)
	}
	sourceClient, err := source.NewClient(source.Config{
		BaseURL:      cfg.SourceURL,
		APIKey:       cfg.SourceAPIKey,
		APIKeyHeader: cfg.SourceKeyHeader,
		Timeout:      cfg.SourceTimeout,
		RPS:          cfg.SourceRPS,
		Paths:        paths,
	}, metrics.NewSourceClient())
	if err != nil {
		return fmt.Errorf("init source client: %w", err)
	}
	if cfg.SourceURL == "" {
		logger.Warn("external data API not configured, categories fall back to ledger and synthetic data")
	}

	chain, err := fallback.NewChain(
		fallback.Routes(
			fallback.NewExternal(sourceClient),
			fallback.NewLedgerGas(ledgerClient),
			fallback.NewLedgerMempool(ledgerClient),
			fallback.NewSynthetic(cfg.SyntheticSeed, fallback.DefaultSyntheticBucket),
		),
		fallback.Config{ProviderTimeout: cfg.ProviderTimeout},
		metrics.NewResolver(),
		logger.Named("fallback"),
	)
	if err != nil {
		return fmt.Errorf("init fallback chain: %w", err)
	}

	window := telemetry.NewWindowFetcher(ledgerClient, cfg.BlockCacheBytes, 0, logger.Named("window"))
	store := telemetry.NewStore(cfg.HistorySize)
	poller, err := telemetry.NewPoller(telemetry.PollerConfig{
		Interval:   cfg.PollInterval,
		Timeout:    cfg.PollTimeout,
		WindowSize: cfg.WindowSize,
	}, window, chain, store, metrics.NewPoller(cfg.Network), logger.Named("poller"))
	if err != nil {
		return fmt.Errorf("init poller: %w", err)
	}

	dispatcher, err := search.NewDispatcher(ledgerClient, cfg.SearchTimeout, metrics.NewSearch(), logger.Named("search"))
	if err != nil {
		return fmt.Errorf("init search: %w", err)
	}

	handler, err := transport.NewHandler(transport.Config{
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	}, store, window, dispatcher, chain, metrics.NewHTTP(), logger.Named("http"))
	if err != nil {
		return fmt.Errorf("init handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", handler.Router())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting HTTP server", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("poller: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// probeLedger checks the node answers before the first cycle. An unreachable
// node is not fatal: cycles degrade until it recovers.
func probeLedger(ctx context.Context, client *ledger.Client, logger *zap.Logger) {
	for attempt := 1; attempt <= ledgerProbeAttempts; attempt++ {
		height, err := client.LatestHeight(ctx)
		if err == nil {
			logger.Info("ledger node reachable", zap.Uint64("height", height))
			return
		}
		logger.Warn("ledger node probe failed", zap.Int("attempt", attempt), zap.Error(err))
		if err := clock.SleepWithContext(ctx, ledgerProbeBackoff); err != nil {
			return
		}
	}
}
