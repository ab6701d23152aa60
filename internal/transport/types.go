package transport

import (
	"context"
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/ashitosh07/monad-explorer/internal/telemetry"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SnapshotSource interface {
		Load() *telemetry.Snapshot
	}
	WindowSource interface {
		FetchWindow(ctx context.Context, size int) model.BlockWindow
	}
	Searcher interface {
		Dispatch(ctx context.Context, query string) model.QueryResult
	}
	CategoryResolver interface {
		ResolveAll(ctx context.Context, categories []model.Category, params model.Params) map[model.Category]model.CategoryResult
	}
	Metrics interface {
		ObserveRequest(route string, code int, started time.Time)
		ObserveRateLimited()
	}
)
