// Package transport exposes the explorer JSON API over HTTP.
package transport

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ashitosh07/monad-explorer/internal/clock"
	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Config struct {
	// RateLimit is the sustained requests per second allowed per visitor;
	// zero disables limiting.
	RateLimit float64
	RateBurst int
}

// Handler serves snapshot reads and on-demand lookups.
type Handler struct {
	logger    *zap.Logger
	snapshots SnapshotSource
	window    WindowSource
	searcher  Searcher
	resolver  CategoryResolver
	metrics   Metrics
	clock     clock.Clock
	visitors  *visitorLimiter
}

func NewHandler(
	cfg Config,
	snapshots SnapshotSource,
	window WindowSource,
	searcher Searcher,
	resolver CategoryResolver,
	metrics Metrics,
	logger *zap.Logger,
) (*Handler, error) {
	if metrics == nil {
		return nil, errors.New("http metrics is required")
	}
	if snapshots == nil {
		return nil, errors.New("snapshot source is required")
	}
	return &Handler{
		logger:    logger,
		snapshots: snapshots,
		window:    window,
		searcher:  searcher,
		resolver:  resolver,
		metrics:   metrics,
		clock:     clock.System{},
		visitors:  newVisitorLimiter(cfg.RateLimit, cfg.RateBurst),
	}, nil
}

// Router wires every route with recovery, metrics and rate limiting.
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(h.recoverPanics, h.observe, h.rateLimit)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/stats", h.stats).Methods(http.MethodGet)
	api.HandleFunc("/network", h.network).Methods(http.MethodGet)
	api.HandleFunc("/blocks", h.blocks).Methods(http.MethodGet)
	api.HandleFunc("/block/{height}", h.block).Methods(http.MethodGet)
	api.HandleFunc("/transaction/{hash}", h.transaction).Methods(http.MethodGet)
	api.HandleFunc("/address/{address}", h.address).Methods(http.MethodGet)
	api.HandleFunc("/search/{query}", h.search).Methods(http.MethodGet)
	api.HandleFunc("/{category:"+categoryPattern()+"}", h.category).Methods(http.MethodGet)

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	return r
}

// servedCategories are exposed as plain data endpoints.
var servedCategories = []model.Category{
	model.CategoryValidators,
	model.CategoryRichList,
	model.CategoryTokens,
	model.CategoryDeFi,
	model.CategoryNFTs,
	model.CategoryGas,
	model.CategoryMEV,
	model.CategoryBridges,
	model.CategoryWhales,
}

func categoryPattern() string {
	names := make([]string, 0, len(servedCategories))
	for _, c := range servedCategories {
		names = append(names, string(c))
	}
	return strings.Join(names, "|")
}
