// Package span provides the markup span extraction primitives shared by
// the analysis engines. Extraction is flat: nested instances of the same
// marker are not supported, and a closing brace inside a label
// early-terminates the label capture. This is a documented limitation of
// the single-level scan, not an error condition.
package span

import (
	"regexp"
	"sort"
	"sync"
)

// Block is one marker occurrence with its captured label and the body
// text running up to the next peer-level marker or end of input.
type Block struct {
	// Label is the text inside the marker's braces.
	Label string

	// Body is the verbatim text between this marker and the next
	// peer marker (exclusive), or to end of input.
	Body string
}

var (
	patternMu sync.RWMutex
	patterns  = make(map[string]*regexp.Regexp)
)

// commandPattern returns the compiled pattern for \name{...}, caching
// compilations since the engines use a small fixed set of commands.
func commandPattern(name string) *regexp.Regexp {
	patternMu.RLock()
	re, ok := patterns[name]
	patternMu.RUnlock()
	if ok {
		return re
	}

	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok = patterns[name]; ok {
		return re
	}
	re = regexp.MustCompile(`\\` + regexp.QuoteMeta(name) + `\{([^}]*)\}`)
	patterns[name] = re
	return re
}

// Commands returns the label captures of every \name{...} occurrence in
// text, in document order. No match yields an empty slice, never an error.
func Commands(text, name string) []string {
	matches := commandPattern(name).FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// Blocks returns every \name{...} occurrence together with the body text
// running up to the next occurrence of name or any of the peer markers,
// or to end of input if none follows. Go's regexp has no lookahead, so
// the boundary is computed from marker positions instead.
func Blocks(text, name string, peers ...string) []Block {
	starts := commandPattern(name).FindAllStringSubmatchIndex(text, -1)
	if len(starts) == 0 {
		return []Block{}
	}

	// Collect every boundary position: occurrences of the marker
	// itself plus all peer markers.
	boundaries := markerPositions(text, append([]string{name}, peers...))

	out := make([]Block, 0, len(starts))
	for _, m := range starts {
		bodyStart := m[1] // end of the full marker match
		bodyEnd := len(text)
		for _, b := range boundaries {
			if b >= bodyStart {
				bodyEnd = b
				break
			}
		}
		out = append(out, Block{
			Label: text[m[2]:m[3]],
			Body:  text[bodyStart:bodyEnd],
		})
	}
	return out
}

// markerPositions returns the sorted start offsets of every occurrence
// of the named markers.
func markerPositions(text string, names []string) []int {
	var positions []int
	for _, n := range names {
		for _, m := range commandPattern(n).FindAllStringIndex(text, -1) {
			positions = append(positions, m[0])
		}
	}
	sort.Ints(positions)
	return positions
}

// Environments returns the bodies of every \begin{name}...\end{name}
// pair in text, non-greedy, with the body spanning newlines.
func Environments(text, name string) []string {
	key := "env:" + name
	patternMu.RLock()
	re, ok := patterns[key]
	patternMu.RUnlock()
	if !ok {
		patternMu.Lock()
		if re, ok = patterns[key]; !ok {
			quoted := regexp.QuoteMeta(name)
			re = regexp.MustCompile(`(?s)\\begin\{` + quoted + `\}(.*?)\\end\{` + quoted + `\}`)
			patterns[key] = re
		}
		patternMu.Unlock()
	}

	matches := re.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
