package telemetry

import (
	"context"
	"errors"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/ashitosh07/monad-explorer/pkg/workerpool"
	"go.uber.org/zap"
)

// WindowFetcher assembles the most recent blocks into a descending window.
type WindowFetcher struct {
	logger  *zap.Logger
	source  BlockSource
	cache   *blockCache
	workers int
}

// NewWindowFetcher builds a fetcher. cacheBytes of zero selects the default
// cache size; a negative value disables caching.
func NewWindowFetcher(source BlockSource, cacheBytes, workers int, logger *zap.Logger) *WindowFetcher {
	if workers <= 0 {
		workers = defaultWorkerCount
	}
	var cache *blockCache
	switch {
	case cacheBytes == 0:
		cache = newBlockCache(defaultBlockCacheSize)
	case cacheBytes > 0:
		cache = newBlockCache(cacheBytes)
	}
	return &WindowFetcher{
		logger:  logger,
		source:  source,
		cache:   cache,
		workers: workers,
	}
}

// FetchWindow never fails: a failed height discovery yields an empty window
// and unavailable blocks are omitted.
func (f *WindowFetcher) FetchWindow(ctx context.Context, size int) model.BlockWindow {
	if size <= 0 {
		return model.BlockWindow{}
	}
	height, err := f.source.LatestHeight(ctx)
	if err != nil {
		f.logger.Warn("height discovery failed, returning empty window", zap.Error(err))
		return model.BlockWindow{}
	}

	heights := windowHeights(height, size)
	summaries, errs := workerpool.Map(ctx, f.workers, heights, f.fetchSummary)

	window := make(model.BlockWindow, 0, len(heights))
	for i, h := range heights {
		if err := errs[i]; err != nil {
			if errors.Is(err, model.ErrNotFound) {
				f.logger.Debug("block unavailable, omitted from window", zap.Uint64("height", h))
			} else {
				f.logger.Warn("fetch block failed, omitted from window", zap.Uint64("height", h), zap.Error(err))
			}
			continue
		}
		window = append(window, summaries[i])
	}
	return window
}

func (f *WindowFetcher) fetchSummary(ctx context.Context, height uint64) (model.BlockSummary, error) {
	if f.cache != nil {
		if summary, ok := f.cache.get(height); ok {
			return summary, nil
		}
	}
	block, err := f.source.GetBlock(ctx, height)
	if err != nil {
		return model.BlockSummary{}, err
	}
	if f.cache != nil {
		f.cache.set(block.BlockSummary)
	}
	return block.BlockSummary, nil
}

// windowHeights lists height, height-1, ... down to size entries or zero.
func windowHeights(height uint64, size int) []uint64 {
	n := uint64(size)
	if height < n-1 {
		n = height + 1
	}
	heights := make([]uint64, 0, n)
	for i := uint64(0); i < n; i++ {
		heights = append(heights, height-i)
	}
	return heights
}
