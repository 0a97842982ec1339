package transit

import (
	"sort"
	"strings"
)

// Burmese marks its case particles directly after the noun, so the
// extractor inspects the text around a matched stop name rather than
// tokenizing. The English prepositions for mixed-script input are
// space-padded so they never match inside an ordinary word.
var (
	destinationMarkers = []string{"သို့", "ကို", " to "}
	originMarkers      = []string{"မှ", "ကနေ", " from "}
)

// match is one recognized stop name and its byte range in the text.
type match struct {
	name  string
	start int
	end   int
}

// Extract recognizes stop names inside free text and assigns them to
// origin/destination slots.
//
// Matching is literal byte-range containment: Burmese has no spaces
// between semantic units, so word-boundary tokenization would miss
// names entirely. Vocabulary entries are tried longest first and a
// candidate overlapping an already-accepted range is dropped, so the
// longest name always wins a shared span.
func Extract(text string, vocabulary []string) ExtractedQuery {
	vocab := make([]string, len(vocabulary))
	copy(vocab, vocabulary)
	sort.SliceStable(vocab, func(i, j int) bool {
		return len(vocab[i]) > len(vocab[j])
	})

	var matches []match
	for _, name := range vocab {
		if name == "" {
			continue
		}
		i := strings.Index(text, name)
		if i < 0 {
			continue
		}
		m := match{name: name, start: i, end: i + len(name)}
		if overlapsAny(m, matches) {
			continue
		}
		matches = append(matches, m)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	switch len(matches) {
	case 0:
		return ExtractedQuery{}
	case 1:
		m := matches[0]
		if containsAny(text[m.end:], destinationMarkers) {
			return ExtractedQuery{End: m.name}
		}
		return ExtractedQuery{Start: m.name}
	default:
		first, second := matches[0], matches[1]
		// The particle scan between the two names is retained from the
		// source behavior; assignment stays positional either way.
		containsAny(text[first.end:second.start], originMarkers)
		return ExtractedQuery{Start: first.name, End: second.name}
	}
}

func overlapsAny(m match, accepted []match) bool {
	for _, a := range accepted {
		if m.start < a.end && a.start < m.end {
			return true
		}
	}
	return false
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
