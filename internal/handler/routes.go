package handler

import "net/http"

type routeJSON struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Color    string   `json:"color,omitempty"`
	Operator string   `json:"operator,omitempty"`
	Stops    []string `json:"stops"`
}

// RouteList handles GET /api/routes.
func (h *Handler) RouteList(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot()
	if snap == nil {
		h.writeError(w, http.StatusServiceUnavailable, "network data not loaded")
		return
	}

	routes := make([]routeJSON, 0, len(snap.Routes))
	for _, rt := range snap.Routes {
		routes = append(routes, routeJSON{
			ID:       rt.ID,
			Name:     rt.Name,
			Color:    rt.Color,
			Operator: rt.Operator,
			Stops:    rt.Stops,
		})
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"routes": routes})
}

type stopJSON struct {
	ID       string  `json:"id"`
	NameEN   string  `json:"name_en"`
	NameMM   string  `json:"name_mm,omitempty"`
	Township string  `json:"township,omitempty"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// StopList handles GET /api/stops.
func (h *Handler) StopList(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot()
	if snap == nil {
		h.writeError(w, http.StatusServiceUnavailable, "network data not loaded")
		return
	}

	stops := make([]stopJSON, 0, len(snap.Stops))
	for _, s := range snap.Stops {
		stops = append(stops, stopJSON{
			ID:       s.ID,
			NameEN:   s.NameEN,
			NameMM:   s.NameMM,
			Township: s.Township,
			Lat:      s.Lat,
			Lon:      s.Lon,
		})
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"stops": stops})
}
