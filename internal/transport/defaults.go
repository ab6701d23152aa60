package transport

import "time"

const (
	defaultBlocksLimit = 10
	maxBlocksLimit     = 50

	visitorIdleTTL      = 10 * time.Minute
	visitorSweepEvery   = 5 * time.Minute
	defaultVisitorBurst = 20
)
