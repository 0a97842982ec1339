package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"ybbus/internal/transit"
)

// Search handles GET /api/search?start=&end=&max_transfers=&max_results=.
// Unknown stops and unreachable pairs produce an empty itinerary list,
// not an error.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot()
	if snap == nil {
		h.writeError(w, http.StatusServiceUnavailable, "network data not loaded")
		return
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		h.writeError(w, http.StatusBadRequest, "start and end are required")
		return
	}

	start = canonicalName(snap, start)
	end = canonicalName(snap, end)
	if start == end {
		// The search itself has no answer for identical endpoints;
		// reject at the API boundary instead of returning nothing.
		h.writeError(w, http.StatusBadRequest, "start and end must differ")
		return
	}

	opts := transit.DefaultSearchOptions()
	var err error
	if opts.MaxTransfers, err = queryInt(r, "max_transfers", opts.MaxTransfers, 0); err != nil {
		h.writeError(w, http.StatusBadRequest, "max_transfers must be an integer >= 0")
		return
	}
	if opts.MaxResults, err = queryInt(r, "max_results", opts.MaxResults, 1); err != nil {
		h.writeError(w, http.StatusBadRequest, "max_results must be an integer >= 1")
		return
	}

	results := transit.Search(snap.Index, start, end, opts)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"start":       start,
		"end":         end,
		"itineraries": toItineraries(results),
	})
}

// canonicalName resolves either localized stop name to the English
// name used in route definitions. Unknown names pass through so the
// search can (harmlessly) find nothing.
func canonicalName(snap *transit.Snapshot, name string) string {
	if s := snap.StopByName(name); s != nil && s.NameEN != "" {
		return s.NameEN
	}
	return name
}

// queryInt parses an optional integer query parameter. Absent means
// fallback; present but malformed or below min is an error for the
// caller to turn into a 400.
func queryInt(r *http.Request, key string, fallback, min int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}
