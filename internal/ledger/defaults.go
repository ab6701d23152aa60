package ledger

import "time"

const defaultCallTimeout = 10 * time.Second
