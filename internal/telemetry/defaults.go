package telemetry

import "time"

const (
	DefaultWindowSize      = 20
	DefaultHistoryCapacity = 30
	DefaultPollInterval    = 10 * time.Minute
	DefaultPollTimeout     = 2 * time.Minute

	defaultWorkerCount    = 8
	defaultTopWallets     = 10
	blockCacheTTLSeconds  = 3600
	minBlockCacheBytes    = 512 * 1024
	defaultBlockCacheSize = 4 * 1024 * 1024
)
