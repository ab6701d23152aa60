package telemetry

import (
	"sync/atomic"
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
)

type NetworkStats struct {
	TotalBlocks       int     `json:"totalBlocks"`
	TotalTransactions int     `json:"totalTransactions"`
	AvgBlockTime      float64 `json:"avgBlockTime"`
	NetworkHashrate   float64 `json:"networkHashrate"`
}

type History struct {
	TPS       Series `json:"tps"`
	GasUsage  Series `json:"gasUsage"`
	BlockTime Series `json:"blockTime"`
}

// Snapshot is the telemetry published by one poll cycle. A published
// Snapshot is never modified.
type Snapshot struct {
	LatestBlocks model.BlockWindow                        `json:"latestBlocks"`
	TPS          float64                                  `json:"tps"`
	GasUsage     uint64                                   `json:"gasUsage"`
	AvgFee       string                                   `json:"avgFee"`
	TopWallets   []WalletActivity                         `json:"topWallets"`
	NetworkStats NetworkStats                             `json:"networkStats"`
	PriceData    model.PriceData                          `json:"priceData"`
	Mempool      model.Mempool                            `json:"mempool"`
	History      History                                  `json:"history"`
	Categories   map[model.Category]model.CategoryResult `json:"-"`
	UpdatedAt    time.Time                                `json:"updatedAt"`
	Degraded     bool                                     `json:"degraded"`
}

// Category returns the cycle's result for c, or an error result of the
// expected shape when the category was not resolved.
func (s *Snapshot) Category(c model.Category) model.CategoryResult {
	if r, ok := s.Categories[c]; ok {
		return r
	}
	return model.CategoryResult{Category: c, Status: model.StatusError, Data: model.Empty(c)}
}

func emptySnapshot(historyCapacity int) *Snapshot {
	return &Snapshot{
		LatestBlocks: model.BlockWindow{},
		AvgFee:       "0",
		TopWallets:   []WalletActivity{},
		PriceData:    model.Empty(model.CategoryPrice).(model.PriceData),
		History: History{
			TPS:       NewSeries(historyCapacity),
			GasUsage:  NewSeries(historyCapacity),
			BlockTime: NewSeries(historyCapacity),
		},
		Categories: map[model.Category]model.CategoryResult{},
		Degraded:   true,
	}
}

// Store holds the current snapshot. Only the poller publishes; readers load
// without locking.
type Store struct {
	current atomic.Pointer[Snapshot]
}

func NewStore(historyCapacity int) *Store {
	s := &Store{}
	s.current.Store(emptySnapshot(historyCapacity))
	return s
}

// Load never returns nil.
func (s *Store) Load() *Snapshot {
	return s.current.Load()
}

func (s *Store) publish(snap *Snapshot) {
	s.current.Store(snap)
}
