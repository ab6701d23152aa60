package fallback

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/ashitosh07/monad-explorer/pkg/safe"
)

// ErrSkipped marks a provider that does not serve the requested category.
// A skip advances the chain without counting as a failure.
var ErrSkipped = errors.New("provider does not serve category")

// External serves categories from the curated HTTP source.
type External struct {
	source ExternalSource
}

func NewExternal(source ExternalSource) *External {
	return &External{source: source}
}

func (p *External) Name() string { return ProviderExternal }

func (p *External) Fetch(ctx context.Context, category model.Category, params model.Params) (model.Payload, error) {
	if !p.source.Supports(category) {
		return nil, fmt.Errorf("%s %s: %w", p.Name(), category, ErrSkipped)
	}
	return p.source.FetchPayload(ctx, category, params)
}

// LedgerGas derives current gas tiers from the node's suggested gas price.
type LedgerGas struct {
	oracle GasOracle
}

func NewLedgerGas(oracle GasOracle) *LedgerGas {
	return &LedgerGas{oracle: oracle}
}

func (p *LedgerGas) Name() string { return ProviderLedger }

func (p *LedgerGas) Fetch(ctx context.Context, category model.Category, _ model.Params) (model.Payload, error) {
	if category != model.CategoryGas {
		return nil, fmt.Errorf("%s %s: %w", p.Name(), category, ErrSkipped)
	}
	price, err := p.oracle.GasPrice(ctx)
	if err != nil {
		return nil, err
	}
	gwei := model.WeiToGwei(price)
	standard, err := safe.Uint64(gwei.Ceil().IntPart())
	if err != nil {
		return nil, fmt.Errorf("gas price %s: %w", price, err)
	}
	return model.GasStats{
		Current: model.GasTiers{
			Slow:     standard * 9 / 10,
			Standard: standard,
			Fast:     standard + standard/4,
			BaseFee:  gwei.String(),
		},
		History:         []model.GasSample{},
		Recommendations: defaultRecommendations,
	}, nil
}

var defaultRecommendations = model.GasRecommendations{
	Transfer: "standard",
	Swap:     "fast",
	Mint:     "standard",
}

// LedgerMempool reads pending and queued counts from the node's pool.
type LedgerMempool struct {
	source MempoolSource
}

func NewLedgerMempool(source MempoolSource) *LedgerMempool {
	return &LedgerMempool{source: source}
}

func (p *LedgerMempool) Name() string { return ProviderLedger }

func (p *LedgerMempool) Fetch(ctx context.Context, category model.Category, _ model.Params) (model.Payload, error) {
	if category != model.CategoryMempool {
		return nil, fmt.Errorf("%s %s: %w", p.Name(), category, ErrSkipped)
	}
	mempool, err := p.source.TxPoolStatus(ctx)
	if err != nil {
		return nil, err
	}
	return mempool, nil
}
