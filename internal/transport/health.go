package transport

import (
	"net/http"
	"time"
)

const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"
	healthStatusStarting = "starting"
)

type healthResponse struct {
	Status      string     `json:"status"`
	SnapshotAge *float64   `json:"snapshotAge"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// health reports the age of the published snapshot. It never touches upstreams.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	snap := h.snapshots.Load()
	if snap.UpdatedAt.IsZero() {
		writeJSON(w, http.StatusOK, healthResponse{Status: healthStatusStarting})
		return
	}

	age := h.clock.Now().Sub(snap.UpdatedAt).Seconds()
	updated := snap.UpdatedAt
	status := healthStatusHealthy
	if snap.Degraded {
		status = healthStatusDegraded
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      status,
		SnapshotAge: &age,
		UpdatedAt:   &updated,
	})
}
