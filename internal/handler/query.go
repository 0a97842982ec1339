package handler

import (
	"encoding/json"
	"net/http"

	"ybbus/internal/dialogue"
	"ybbus/internal/transit"
)

// queryRequest is one conversational turn. start and end carry the
// slots from the previous reply so the exchange stays stateless on the
// server side.
type queryRequest struct {
	Text  string `json:"text"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type queryResponse struct {
	State       string          `json:"state"`
	Start       string          `json:"start,omitempty"`
	End         string          `json:"end,omitempty"`
	Reply       string          `json:"reply"`
	Itineraries []itineraryJSON `json:"itineraries,omitempty"`
}

// Query handles POST /api/query: extract endpoints from free text,
// search when both are known, otherwise ask for the missing one.
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot()
	if snap == nil {
		h.writeError(w, http.StatusServiceUnavailable, "network data not loaded")
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		h.writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	c := dialogue.New(snap)
	c.Seed(req.Start, req.End)
	reply := c.Handle(req.Text, transit.DefaultSearchOptions())

	resp := queryResponse{
		State: reply.State.String(),
		Start: reply.Start,
		End:   reply.End,
		Reply: reply.Text,
	}
	if reply.State == dialogue.HaveBoth {
		resp.Itineraries = toItineraries(reply.Results)
	}
	h.writeJSON(w, http.StatusOK, resp)
}
