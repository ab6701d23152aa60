package telemetry

import (
	"slices"
	"sort"

	"github.com/ashitosh07/monad-explorer/internal/model"
)

// ComputeMetrics derives throughput and block time from a window. The window
// is ordered by descending height on a copy before any delta is taken.
func ComputeMetrics(window model.BlockWindow) model.NetworkMetrics {
	if len(window) == 0 {
		return model.NetworkMetrics{}
	}
	blocks := slices.Clone(window)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Height > blocks[j].Height
	})

	totalTx := 0
	for _, b := range blocks {
		totalTx += b.TxCount
	}
	out := model.NetworkMetrics{TotalTxInWindow: totalTx}
	if len(blocks) < 2 {
		return out
	}

	newest, oldest := blocks[0], blocks[len(blocks)-1]
	span := newest.Timestamp - oldest.Timestamp
	if span < 1 {
		span = 1
	}
	out.TPS = float64(totalTx) / float64(span)

	var deltas int64
	for i := 0; i+1 < len(blocks); i++ {
		deltas += blocks[i].Timestamp - blocks[i+1].Timestamp
	}
	if avg := float64(deltas) / float64(len(blocks)-1); avg > 0 {
		out.AvgBlockTimeSeconds = avg
	}
	return out
}

// AvgFee is the base fee paid by the block's gas, in MON.
func AvgFee(block model.BlockSummary) string {
	return model.FeeMON(block.GasUsed, block.BaseFeePerGas).String()
}

// WalletActivity counts how many window blocks an address produced.
type WalletActivity struct {
	Address  string `json:"address"`
	Count    int    `json:"count"`
	LastSeen int64  `json:"lastSeen"`
}

// TopWallets ranks block producers in the window by block count, then address.
func TopWallets(window model.BlockWindow, limit int) []WalletActivity {
	byAddress := make(map[string]*WalletActivity)
	for _, b := range window {
		if b.Miner == "" {
			continue
		}
		w, ok := byAddress[b.Miner]
		if !ok {
			w = &WalletActivity{Address: b.Miner}
			byAddress[b.Miner] = w
		}
		w.Count++
		if b.Timestamp > w.LastSeen {
			w.LastSeen = b.Timestamp
		}
	}

	out := make([]WalletActivity, 0, len(byAddress))
	for _, w := range byAddress {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Address < out[j].Address
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
