package model

// BlockSummary is a block fetched without transaction bodies.
type BlockSummary struct {
	Height        uint64 `json:"number"`
	Hash          string `json:"hash"`
	ParentHash    string `json:"parentHash"`
	Timestamp     int64  `json:"timestamp"`
	TxCount       int    `json:"txCount"`
	GasUsed       uint64 `json:"gasUsed"`
	GasLimit      uint64 `json:"gasLimit"`
	BaseFeePerGas string `json:"baseFeePerGas"`
	Miner         string `json:"miner"`
}

// BlockDetail extends a summary with the transaction hash list.
type BlockDetail struct {
	BlockSummary
	Size         uint64   `json:"size"`
	Transactions []string `json:"transactions"`
}

// BlockWindow holds summaries ordered by strictly decreasing height.
type BlockWindow []BlockSummary

// Newest returns the highest block of the window.
func (w BlockWindow) Newest() (BlockSummary, bool) {
	if len(w) == 0 {
		return BlockSummary{}, false
	}
	return w[0], true
}

// NetworkMetrics is derived from a single block window.
type NetworkMetrics struct {
	TPS                 float64 `json:"tps"`
	AvgBlockTimeSeconds float64 `json:"avgBlockTime"`
	TotalTxInWindow     int     `json:"totalTx"`
}
