package handler

import (
	"math"
	"net/http"
	"sort"
	"strconv"

	"ybbus/internal/geo"
	"ybbus/internal/transit"
)

// nearestRadiusKm bounds the nearest-stop lookup. The Yangon network
// spans well under this, so in practice it only trims queries made
// from outside the service area.
const nearestRadiusKm = 30

type nearbyStopJSON struct {
	ID         string  `json:"id"`
	NameEN     string  `json:"name_en"`
	NameMM     string  `json:"name_mm,omitempty"`
	Township   string  `json:"township,omitempty"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceKm float64 `json:"distance_km"`
}

// Nearest handles GET /api/stops/nearest?lat=&lon=&limit=. Stops are
// ranked by great-circle distance from the query point.
func (h *Handler) Nearest(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot()
	if snap == nil {
		h.writeError(w, http.StatusServiceUnavailable, "network data not loaded")
		return
	}

	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		h.writeError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}
	limit, err := queryInt(r, "limit", 5, 1)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "limit must be an integer >= 1")
		return
	}

	stops := nearestStops(snap.Stops, lat, lon, limit)
	h.writeJSON(w, http.StatusOK, map[string]any{"stops": stops})
}

func nearestStops(stops []transit.Stop, lat, lon float64, limit int) []nearbyStopJSON {
	// Bounding-box prefilter, refined with the exact distance below.
	latDeg, lonDeg := geo.BoundingBoxRadius(lat, nearestRadiusKm)

	out := make([]nearbyStopJSON, 0, limit)
	for _, s := range stops {
		if math.Abs(s.Lat-lat) > latDeg || math.Abs(s.Lon-lon) > lonDeg {
			continue
		}
		out = append(out, nearbyStopJSON{
			ID:         s.ID,
			NameEN:     s.NameEN,
			NameMM:     s.NameMM,
			Township:   s.Township,
			Lat:        s.Lat,
			Lon:        s.Lon,
			DistanceKm: geo.DistanceKm(lat, lon, s.Lat, s.Lon),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
