package transit

import (
	"fmt"
	"testing"
)

func route(id string, stops ...string) *Route {
	return &Route{ID: id, Name: id, Stops: stops}
}

func stepsString(r SearchResult) string {
	s := ""
	for _, st := range r.Steps {
		s += fmt.Sprintf("(%s,%s,%s)", st.Route.ID, st.From, st.To)
	}
	return s
}

func TestSearch_DirectRoute(t *testing.T) {
	idx := NewIndex([]*Route{
		route("1", "X", "Y"),
		route("2", "Y", "Z"),
	})

	results := Search(idx, "X", "Y", DefaultSearchOptions())
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if got, want := stepsString(results[0]), "(1,X,Y)"; got != want {
		t.Errorf("steps = %s, want %s", got, want)
	}
	if tc := results[0].TransferCount(); tc != 0 {
		t.Errorf("transfer count = %d, want 0", tc)
	}
}

func TestSearch_OneTransfer(t *testing.T) {
	idx := NewIndex([]*Route{
		route("1", "X", "Y"),
		route("2", "Y", "Z"),
	})

	results := Search(idx, "X", "Z", DefaultSearchOptions())
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if got, want := stepsString(results[0]), "(1,X,Y)(2,Y,Z)"; got != want {
		t.Errorf("steps = %s, want %s", got, want)
	}
	if tc := results[0].TransferCount(); tc != 1 {
		t.Errorf("transfer count = %d, want 1", tc)
	}
}

func TestSearch_Unreachable(t *testing.T) {
	idx := NewIndex([]*Route{
		route("1", "X", "Y"),
		route("2", "Y", "Z"),
		route("9", "W", "V"),
	})

	results := Search(idx, "X", "W", DefaultSearchOptions())
	if len(results) != 0 {
		t.Errorf("got %d results for unreachable stop, want 0", len(results))
	}
}

func TestSearch_SameStartAndEnd(t *testing.T) {
	idx := NewIndex([]*Route{
		route("1", "X", "Y"),
		route("2", "Y", "X"),
	})

	// No short-circuit exists for start == end: the seeded visited set
	// simply keeps the search from ever completing an itinerary.
	results := Search(idx, "X", "X", DefaultSearchOptions())
	if len(results) != 0 {
		t.Errorf("got %d results for start == end, want 0", len(results))
	}
}

func TestSearch_MaxTransfersBoundsSteps(t *testing.T) {
	// Reaching T needs three rides: S-A, A-B, B-T.
	routes := []*Route{
		route("1", "S", "A"),
		route("2", "A", "B"),
		route("3", "B", "T"),
	}

	results := Search(NewIndex(routes), "S", "T", SearchOptions{MaxTransfers: 2})
	if len(results) != 1 {
		t.Fatalf("got %d results with 2 transfers allowed, want 1", len(results))
	}
	if n := len(results[0].Steps); n != 3 {
		t.Errorf("steps = %d, want 3", n)
	}

	results = Search(NewIndex(routes), "S", "T", SearchOptions{MaxTransfers: 1})
	if len(results) != 0 {
		t.Errorf("got %d results with 1 transfer allowed, want 0", len(results))
	}
}

func TestSearch_ZeroTransfersDirectOnly(t *testing.T) {
	idx := NewIndex([]*Route{
		route("1", "X", "Y"),
		route("2", "Y", "Z"),
	})

	results := Search(idx, "X", "Y", SearchOptions{MaxTransfers: 0, MaxResults: 5})
	if len(results) != 1 {
		t.Fatalf("got %d direct results, want 1", len(results))
	}
	if tc := results[0].TransferCount(); tc != 0 {
		t.Errorf("transfer count = %d, want 0", tc)
	}

	// Z needs a transfer, so a zero-transfer search must not reach it.
	results = Search(idx, "X", "Z", SearchOptions{MaxTransfers: 0, MaxResults: 5})
	if len(results) != 0 {
		t.Errorf("got %d results with 0 transfers allowed, want 0", len(results))
	}
}

func TestSearch_MaxResultsCap(t *testing.T) {
	var routes []*Route
	for i := 1; i <= 8; i++ {
		routes = append(routes, route(fmt.Sprintf("D%d", i), "S", "T"))
	}

	results := Search(NewIndex(routes), "S", "T", SearchOptions{MaxResults: 5})
	if len(results) != 5 {
		t.Fatalf("got %d results, want capped at 5", len(results))
	}
	// Ties keep discovery order, which here is route-collection order.
	for i, r := range results {
		if want := fmt.Sprintf("D%d", i+1); r.Steps[0].Route.ID != want {
			t.Errorf("result %d rode route %s, want %s", i, r.Steps[0].Route.ID, want)
		}
	}
}

func TestSearch_GlobalVisitedSkipsAlternates(t *testing.T) {
	// Two lines cover S-M, but only one itinerary through M is found:
	// once a branch reaches M, no other branch expands through it.
	idx := NewIndex([]*Route{
		route("1", "S", "M"),
		route("2", "M", "T"),
		route("3", "S", "M"),
	})

	results := Search(idx, "S", "T", DefaultSearchOptions())
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 (global visited set)", len(results))
	}
	if got, want := stepsString(results[0]), "(1,S,M)(2,M,T)"; got != want {
		t.Errorf("steps = %s, want %s", got, want)
	}
}

func TestSearch_Invariants(t *testing.T) {
	// A denser network: downtown grid with several interchange stops.
	idx := NewIndex([]*Route{
		route("21", "Sule", "Pansodan", "Botahtaung"),
		route("36", "Hledan", "Myaynigone", "Sule"),
		route("61", "Hledan", "Insein", "Mingaladon"),
		route("37", "Botahtaung", "Thaketa", "Dawbon"),
		route("15", "Myaynigone", "Thaketa"),
	})

	results := Search(idx, "Hledan", "Dawbon", SearchOptions{MaxTransfers: 2, MaxResults: 5})
	if len(results) == 0 {
		t.Fatal("expected at least one itinerary")
	}

	prev := -1
	for i, r := range results {
		if tc := r.TransferCount(); tc != len(r.Steps)-1 || tc < 0 {
			t.Errorf("result %d: transfer count %d inconsistent with %d steps", i, tc, len(r.Steps))
		}
		if r.TransferCount() < prev {
			t.Errorf("results not sorted by transfer count at index %d", i)
		}
		prev = r.TransferCount()

		if len(r.Steps) > 3 {
			t.Errorf("result %d has %d steps, exceeds max transfers", i, len(r.Steps))
		}

		seen := map[string]bool{}
		for _, st := range r.Steps {
			if seen[st.Route.ID] {
				t.Errorf("result %d rides route %s twice", i, st.Route.ID)
			}
			seen[st.Route.ID] = true
			if !st.Route.HasStop(st.From) || !st.Route.HasStop(st.To) {
				t.Errorf("result %d: step endpoints not on route %s", i, st.Route.ID)
			}
		}
	}
}

func TestIndex_RoutesThrough(t *testing.T) {
	r1 := route("1", "X", "Y")
	r2 := route("2", "Y", "Z")
	idx := NewIndex([]*Route{r1, r2})

	tests := []struct {
		stop string
		want int
	}{
		{"X", 1},
		{"Y", 2},
		{"Z", 1},
		{"missing", 0},
	}
	for _, tt := range tests {
		t.Run(tt.stop, func(t *testing.T) {
			if got := len(idx.RoutesThrough(tt.stop)); got != tt.want {
				t.Errorf("RoutesThrough(%q) = %d routes, want %d", tt.stop, got, tt.want)
			}
		})
	}
}
