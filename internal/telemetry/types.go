package telemetry

import (
	"context"
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		GetBlock(ctx context.Context, height uint64) (*model.BlockDetail, error)
	}
	WindowSource interface {
		FetchWindow(ctx context.Context, size int) model.BlockWindow
	}
	CategoryResolver interface {
		ResolveAll(ctx context.Context, categories []model.Category, params model.Params) map[model.Category]model.CategoryResult
	}
	PollerMetrics interface {
		ObserveCycle(degraded bool, started time.Time)
		ObserveSkipped()
		ObserveWindow(blocks int)
	}
)
