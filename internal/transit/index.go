package transit

// Index answers "which routes pass through stop S" without scanning
// the whole route collection per query. Build once per snapshot;
// routes are immutable for the index's lifetime.
type Index struct {
	byStop map[string][]*Route
}

// NewIndex builds the stop-name → routes mapping.
func NewIndex(routes []*Route) *Index {
	idx := &Index{byStop: make(map[string][]*Route)}
	for _, r := range routes {
		for _, stop := range r.Stops {
			idx.byStop[stop] = append(idx.byStop[stop], r)
		}
	}
	return idx
}

// RoutesThrough returns every route whose stop sequence contains the
// named stop, in route-collection order. Nil when no route serves it.
func (idx *Index) RoutesThrough(stop string) []*Route {
	return idx.byStop[stop]
}
