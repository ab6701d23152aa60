package transport

import (
	"net/http"
	"strconv"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/ashitosh07/monad-explorer/internal/telemetry"
	"github.com/gorilla/mux"
)

type networkResponse struct {
	NetworkStats telemetry.NetworkStats `json:"networkStats"`
	Mempool      model.Mempool          `json:"mempool"`
	PriceData    model.PriceData        `json:"priceData"`
}

func (h *Handler) stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.snapshots.Load())
}

func (h *Handler) network(w http.ResponseWriter, _ *http.Request) {
	snap := h.snapshots.Load()
	writeJSON(w, http.StatusOK, networkResponse{
		NetworkStats: snap.NetworkStats,
		Mempool:      snap.Mempool,
		PriceData:    snap.PriceData,
	})
}

func (h *Handler) category(w http.ResponseWriter, r *http.Request) {
	c := model.Category(mux.Vars(r)["category"])
	writeJSON(w, http.StatusOK, h.snapshots.Load().Category(c).Data)
}

func (h *Handler) blocks(w http.ResponseWriter, r *http.Request) {
	limit := defaultBlocksLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = min(n, maxBlocksLimit)
	}
	writeJSON(w, http.StatusOK, h.window.FetchWindow(r.Context(), limit))
}
