// Package handler implements the JSON API over the network snapshot:
// itinerary search, free-text queries, and nearest-stop lookup.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"

	"ybbus/internal/config"
	"ybbus/internal/transit"
)

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	snap   atomic.Pointer[transit.Snapshot]
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Handler. The snapshot is supplied later via
// SetSnapshot once the store has been read.
func New(cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{cfg: cfg, logger: logger}
}

// SetSnapshot publishes a freshly loaded network snapshot. Queries
// already in flight keep the snapshot they started with.
func (h *Handler) SetSnapshot(snap *transit.Snapshot) {
	h.snap.Store(snap)
}

// snapshot returns the current snapshot, or nil before the first load.
func (h *Handler) snapshot() *transit.Snapshot {
	return h.snap.Load()
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encoding response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

// stepJSON is the wire form of one ride segment.
type stepJSON struct {
	RouteID   string `json:"route_id"`
	RouteName string `json:"route_name"`
	Color     string `json:"color,omitempty"`
	Operator  string `json:"operator,omitempty"`
	From      string `json:"from"`
	To        string `json:"to"`
}

type itineraryJSON struct {
	Steps     []stepJSON `json:"steps"`
	Transfers int        `json:"transfers"`
}

func toItineraries(results []transit.SearchResult) []itineraryJSON {
	out := make([]itineraryJSON, 0, len(results))
	for _, r := range results {
		it := itineraryJSON{Transfers: r.TransferCount()}
		for _, s := range r.Steps {
			it.Steps = append(it.Steps, stepJSON{
				RouteID:   s.Route.ID,
				RouteName: s.Route.Name,
				Color:     s.Route.Color,
				Operator:  s.Route.Operator,
				From:      s.From,
				To:        s.To,
			})
		}
		out = append(out, it)
	}
	return out
}
