package source

import "time"

const (
	DefaultAPIKeyHeader = "X-API-KEY"

	defaultTimeout = 5 * time.Second
	addressToken   = "{address}"
)
