package transit

import "sort"

// SearchOptions bound the itinerary search. MaxTransfers of zero is
// honored (direct rides only); a negative MaxTransfers or a
// non-positive MaxResults falls back to the defaults below.
type SearchOptions struct {
	MaxTransfers int
	MaxResults   int
}

const (
	DefaultMaxTransfers = 2
	DefaultMaxResults   = 5
)

// DefaultSearchOptions returns the standard search bounds.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{MaxTransfers: DefaultMaxTransfers, MaxResults: DefaultMaxResults}
}

// partialPath is an in-progress itinerary during the breadth-first
// expansion: the stop the rider has reached and the steps taken so far.
type partialPath struct {
	current string
	steps   []PathStep
}

func (p *partialPath) usedRoute(r *Route) bool {
	for _, s := range p.steps {
		if s.Route == r {
			return true
		}
	}
	return false
}

// Search finds itineraries from start to end, breadth-first, layered by
// transfer count. Results are sorted ascending by transfers, ties in
// discovery order.
//
// A single visited set is shared across all branches: once any branch
// reaches a stop, no other branch expands through it. This bounds the
// queue at the cost of some alternate itineraries through shared
// intermediate stops.
func Search(idx *Index, start, end string, opts SearchOptions) []SearchResult {
	maxTransfers := opts.MaxTransfers
	if maxTransfers < 0 {
		maxTransfers = DefaultMaxTransfers
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	visited := map[string]bool{start: true}
	queue := []*partialPath{{current: start}}
	var results []SearchResult

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if len(p.steps) > maxTransfers+1 {
			continue
		}

		for _, r := range idx.RoutesThrough(p.current) {
			if p.usedRoute(r) {
				continue
			}

			// The destination is never marked visited by expansion, so
			// this check only fails when start == end (start is seeded),
			// so searching a stop against itself finds nothing.
			if r.HasStop(end) && !visited[end] {
				steps := make([]PathStep, len(p.steps), len(p.steps)+1)
				copy(steps, p.steps)
				steps = append(steps, PathStep{Route: r, From: p.current, To: end})
				results = append(results, SearchResult{Steps: steps})
				if len(results) >= maxResults {
					return sortByTransfers(results)
				}
			}

			if len(p.steps) < maxTransfers {
				for _, stop := range r.Stops {
					if stop == p.current || stop == end || visited[stop] {
						continue
					}
					visited[stop] = true
					steps := make([]PathStep, len(p.steps), len(p.steps)+1)
					copy(steps, p.steps)
					steps = append(steps, PathStep{Route: r, From: p.current, To: stop})
					queue = append(queue, &partialPath{current: stop, steps: steps})
				}
			}
		}
	}

	return sortByTransfers(results)
}

func sortByTransfers(results []SearchResult) []SearchResult {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TransferCount() < results[j].TransferCount()
	})
	return results
}
