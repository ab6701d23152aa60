package search

import "time"

const DefaultTimeout = 15 * time.Second
