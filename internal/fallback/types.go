package fallback

import (
	"context"
	"math/big"
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Provider is one tier of a fallback chain.
	Provider interface {
		Name() string
		Fetch(ctx context.Context, category model.Category, params model.Params) (model.Payload, error)
	}
	ExternalSource interface {
		Supports(category model.Category) bool
		FetchPayload(ctx context.Context, category model.Category, params model.Params) (model.Payload, error)
	}
	GasOracle interface {
		GasPrice(ctx context.Context) (*big.Int, error)
	}
	MempoolSource interface {
		TxPoolStatus(ctx context.Context) (model.Mempool, error)
	}
	Metrics interface {
		ObserveResolve(category model.Category, status model.CategoryStatus, source string, started time.Time)
		ObserveProviderFailure(category model.Category, provider string)
	}
)
