// Package fallback resolves category data through ordered provider chains.
package fallback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/ashitosh07/monad-explorer/pkg/workerpool"
	"go.uber.org/zap"
)

type Config struct {
	ProviderTimeout time.Duration
	Workers         int
}

// Chain tries each provider of a category once, in order, and reports which
// one satisfied the request.
type Chain struct {
	logger  *zap.Logger
	routes  map[model.Category][]Provider
	timeout time.Duration
	workers int
	metrics Metrics
}

func NewChain(routes map[model.Category][]Provider, cfg Config, metrics Metrics, logger *zap.Logger) (*Chain, error) {
	if metrics == nil {
		return nil, errors.New("fallback metrics is required")
	}
	for c := range routes {
		if !c.Valid() {
			return nil, fmt.Errorf("route for unknown category %q", c)
		}
	}
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = DefaultProviderTimeout
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkerCount
	}
	return &Chain{
		logger:  logger,
		routes:  routes,
		timeout: cfg.ProviderTimeout,
		workers: cfg.Workers,
		metrics: metrics,
	}, nil
}

// Routes builds the provider order for every category. Nil providers are left out.
func Routes(external, gas, mempool, synthetic Provider) map[model.Category][]Provider {
	routes := make(map[model.Category][]Provider)
	for _, c := range model.PollCategories {
		switch c {
		case model.CategoryGas:
			routes[c] = providers(external, gas, synthetic)
		case model.CategoryMempool:
			routes[c] = providers(mempool, synthetic)
		default:
			routes[c] = providers(external, synthetic)
		}
	}
	for _, c := range model.AccountCategories {
		routes[c] = providers(external, synthetic)
	}
	return routes
}

func providers(candidates ...Provider) []Provider {
	out := make([]Provider, 0, len(candidates))
	for _, p := range candidates {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Resolve never fails: when no provider yields a valid payload the result has
// status error and the category's empty payload.
func (c *Chain) Resolve(ctx context.Context, category model.Category, params model.Params) model.CategoryResult {
	started := time.Now()
	result := c.resolve(ctx, category, params)
	c.metrics.ObserveResolve(category, result.Status, result.Source, started)
	return result
}

func (c *Chain) resolve(ctx context.Context, category model.Category, params model.Params) model.CategoryResult {
	for i, p := range c.routes[category] {
		payload, err := c.attempt(ctx, p, category, params)
		if err != nil {
			if errors.Is(err, ErrSkipped) {
				continue
			}
			c.metrics.ObserveProviderFailure(category, p.Name())
			c.logger.Debug("provider failed, advancing chain",
				zap.String("category", string(category)),
				zap.String("provider", p.Name()),
				zap.Error(err),
			)
			continue
		}

		status := model.StatusOK
		if i > 0 {
			status = model.StatusFallback
		}
		return model.CategoryResult{Category: category, Status: status, Data: payload, Source: p.Name()}
	}

	c.logger.Warn("no provider satisfied category", zap.String("category", string(category)))
	return errorResult(category)
}

func (c *Chain) attempt(ctx context.Context, p Provider, category model.Category, params model.Params) (model.Payload, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := p.Fetch(ctx, category, params)
	if err != nil {
		return nil, err
	}
	if payload == nil || payload.Len() == 0 {
		return nil, fmt.Errorf("%s %s: %w", p.Name(), category, model.ErrEmptyPayload)
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("%s %s: %w", p.Name(), category, err)
	}
	return payload, nil
}

// ResolveAll resolves every category concurrently and waits for all of them.
func (c *Chain) ResolveAll(ctx context.Context, categories []model.Category, params model.Params) map[model.Category]model.CategoryResult {
	results, _ := workerpool.Map(ctx, c.workers, categories,
		func(ctx context.Context, category model.Category) (model.CategoryResult, error) {
			return c.Resolve(ctx, category, params), nil
		})

	out := make(map[model.Category]model.CategoryResult, len(categories))
	for i, category := range categories {
		r := results[i]
		if r.Data == nil {
			r = errorResult(category)
		}
		out[category] = r
	}
	return out
}

func errorResult(category model.Category) model.CategoryResult {
	return model.CategoryResult{Category: category, Status: model.StatusError, Data: model.Empty(category)}
}
