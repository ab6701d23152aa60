package telemetry

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ashitosh07/monad-explorer/internal/clock"
	"github.com/ashitosh07/monad-explorer/internal/model"
	"go.uber.org/zap"
)

type PollerConfig struct {
	Interval   time.Duration
	Timeout    time.Duration
	WindowSize int
	Categories []model.Category
}

// Poller refreshes the telemetry snapshot on a fixed interval.
type Poller struct {
	logger     *zap.Logger
	window     WindowSource
	resolver   CategoryResolver
	store      *Store
	metrics    PollerMetrics
	clock      clock.Clock
	interval   time.Duration
	timeout    time.Duration
	windowSize int
	categories []model.Category

	running atomic.Bool
	wg      sync.WaitGroup
}

func NewPoller(
	cfg PollerConfig,
	window WindowSource,
	resolver CategoryResolver,
	store *Store,
	metrics PollerMetrics,
	logger *zap.Logger,
) (*Poller, error) {
	if metrics == nil {
		return nil, errors.New("poller metrics is required")
	}
	if store == nil {
		return nil, errors.New("snapshot store is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultPollTimeout
	}
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = DefaultWindowSize
	}
	if cfg.Categories == nil {
		cfg.Categories = model.PollCategories
	}
	return &Poller{
		logger:     logger,
		window:     window,
		resolver:   resolver,
		store:      store,
		metrics:    metrics,
		clock:      clock.System{},
		interval:   cfg.Interval,
		timeout:    cfg.Timeout,
		windowSize: cfg.WindowSize,
		categories: slices.Clone(cfg.Categories),
	}, nil
}

// Run starts a cycle immediately and then on every tick until ctx is done.
// A tick that finds a cycle still running is skipped, not queued.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	defer p.wg.Wait()

	p.trigger(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.trigger(ctx)
		}
	}
}

func (p *Poller) trigger(ctx context.Context) bool {
	if !p.running.CompareAndSwap(false, true) {
		p.metrics.ObserveSkipped()
		p.logger.Warn("previous poll cycle still running, skipping tick")
		return false
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.running.Store(false)
		p.Cycle(ctx)
	}()
	return true
}

// Cycle runs one poll under the cycle deadline and publishes the result.
func (p *Poller) Cycle(ctx context.Context) *Snapshot {
	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var (
		window  model.BlockWindow
		results map[model.Category]model.CategoryResult
		wg      sync.WaitGroup
	)
	wg.Go(func() {
		window = p.window.FetchWindow(ctx, p.windowSize)
	})
	wg.Go(func() {
		results = p.resolver.ResolveAll(ctx, p.categories, nil)
	})
	wg.Wait()

	expired := ctx.Err() != nil
	prev := p.store.Load()
	snap := p.build(prev, window, results, expired)
	p.store.publish(snap)

	p.metrics.ObserveWindow(len(window))
	p.metrics.ObserveCycle(snap.Degraded, started)
	p.logger.Info("poll cycle completed",
		zap.Int("blocks", len(window)),
		zap.Float64("tps", snap.TPS),
		zap.Bool("degraded", snap.Degraded),
		zap.Duration("took", time.Since(started)),
	)
	return snap
}

func (p *Poller) build(prev *Snapshot, window model.BlockWindow, results map[model.Category]model.CategoryResult, expired bool) *Snapshot {
	now := p.clock.Now()
	snap := &Snapshot{
		History:    prev.History,
		Categories: make(map[model.Category]model.CategoryResult, len(p.categories)),
		UpdatedAt:  now,
		Degraded:   expired || len(window) == 0,
	}

	for _, c := range p.categories {
		r, ok := results[c]
		if !ok {
			r = model.CategoryResult{Category: c, Status: model.StatusError, Data: model.Empty(c)}
		}
		if expired && r.Status == model.StatusError {
			r = staleResult(prev, r)
		}
		snap.Categories[c] = r
	}
	if price, ok := snap.Category(model.CategoryPrice).Data.(model.PriceData); ok {
		snap.PriceData = price
	}
	if mempool, ok := snap.Category(model.CategoryMempool).Data.(model.Mempool); ok {
		snap.Mempool = mempool
	}

	newest, ok := window.Newest()
	if !ok {
		// keep the last good block telemetry; Degraded marks it stale
		snap.LatestBlocks = prev.LatestBlocks
		snap.TPS = prev.TPS
		snap.GasUsage = prev.GasUsage
		snap.AvgFee = prev.AvgFee
		snap.TopWallets = prev.TopWallets
		snap.NetworkStats = prev.NetworkStats
		return snap
	}

	metrics := ComputeMetrics(window)
	snap.LatestBlocks = window
	snap.TPS = metrics.TPS
	snap.GasUsage = newest.GasUsed
	snap.AvgFee = AvgFee(newest)
	snap.TopWallets = TopWallets(window, defaultTopWallets)
	snap.NetworkStats = NetworkStats{
		TotalBlocks:       len(window),
		TotalTransactions: metrics.TotalTxInWindow,
		AvgBlockTime:      metrics.AvgBlockTimeSeconds,
	}
	snap.History = History{
		TPS:       prev.History.TPS.Append(now, metrics.TPS),
		GasUsage:  prev.History.GasUsage.Append(now, float64(newest.GasUsed)),
		BlockTime: prev.History.BlockTime.Append(now, metrics.AvgBlockTimeSeconds),
	}
	return snap
}

// staleResult serves the previous cycle's data for a category the expired
// cycle could not resolve. Without usable previous data the error stands.
func staleResult(prev *Snapshot, failed model.CategoryResult) model.CategoryResult {
	r, ok := prev.Categories[failed.Category]
	if !ok || r.Status == model.StatusError {
		return failed
	}
	r.Status = model.StatusDegraded
	return r
}
