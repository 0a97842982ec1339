// Package transit holds the in-memory network model and the two core
// query algorithms: transfer-capped itinerary search and free-text
// endpoint extraction.
package transit

// Stop is a named boarding location. Stops carry both an English and a
// Burmese name; route definitions reference stops by name, not by ID.
type Stop struct {
	ID       string
	NameEN   string
	NameMM   string
	Township string
	Lat      float64
	Lon      float64
}

// Route is one bus line: an ordered sequence of stop names. The listed
// order is display order only; search treats a route as traversable
// between any two of its stops. Stop names are unique within a route.
type Route struct {
	ID       string
	Name     string
	Color    string
	Operator string
	Stops    []string
}

// HasStop reports whether the route serves the named stop.
func (r *Route) HasStop(name string) bool {
	for _, s := range r.Stops {
		if s == name {
			return true
		}
	}
	return false
}

// PathStep is one ride segment: board Route at From, alight at To.
type PathStep struct {
	Route *Route
	From  string
	To    string
}

// SearchResult is a complete itinerary from origin to destination.
type SearchResult struct {
	Steps []PathStep
}

// TransferCount is the number of route changes in the itinerary.
func (sr SearchResult) TransferCount() int {
	return len(sr.Steps) - 1
}

// ExtractedQuery holds the stop names recognized in a free-text
// utterance. An empty string means the slot was not recognized.
type ExtractedQuery struct {
	Start string
	End   string
}

// Snapshot is an immutable view of the network loaded from the store.
// All queries run against one snapshot; if the underlying data changes
// the caller loads a fresh one.
type Snapshot struct {
	Stops  []Stop
	Routes []*Route
	Index  *Index
}

// NewSnapshot builds a snapshot with its route index.
func NewSnapshot(stops []Stop, routes []*Route) *Snapshot {
	return &Snapshot{Stops: stops, Routes: routes, Index: NewIndex(routes)}
}

// Vocabulary returns every recognizable stop name, English and Burmese,
// for use by the text extractor.
func (s *Snapshot) Vocabulary() []string {
	vocab := make([]string, 0, len(s.Stops)*2)
	for _, st := range s.Stops {
		if st.NameEN != "" {
			vocab = append(vocab, st.NameEN)
		}
		if st.NameMM != "" {
			vocab = append(vocab, st.NameMM)
		}
	}
	return vocab
}

// StopByName finds a stop by either of its names. Returns nil if no
// stop matches.
func (s *Snapshot) StopByName(name string) *Stop {
	for i := range s.Stops {
		if s.Stops[i].NameEN == name || s.Stops[i].NameMM == name {
			return &s.Stops[i]
		}
	}
	return nil
}
