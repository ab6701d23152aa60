package fallback

import "time"

const (
	ProviderExternal  = "external"
	ProviderLedger    = "ledger"
	ProviderSynthetic = "synthetic"

	DefaultProviderTimeout = 10 * time.Second
	DefaultSyntheticBucket = 10 * time.Minute

	defaultWorkerCount = 8
)
