// Package intersect precomputes letter crossings between candidate words
// and stores them in a graph keyed by unordered word pair.
//
// The adjacency itself is delegated to github.com/katalvlaran/lvlath/core:
// one vertex per word, one weighted edge per pair that shares at least one
// letter, with the edge weight holding the intersection count for that
// pair. core.Graph cannot carry arbitrary per-edge payloads, so the
// positional detail (which indices cross on which letter, in both
// orientations) is kept in a side map owned by Graph, keyed the same way
// the edges are.
package intersect

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/core"
)

// Intersection records that wordA's letter at idxA equals wordB's letter
// at idxB.
type Intersection struct {
	WordA  string
	IdxA   int
	WordB  string
	IdxB   int
	Letter byte
}

// Graph is the intersection graph for a fixed word list: for any ordered
// pair (a, b) it answers "all intersections between a and b" in time
// proportional to the number of intersections found.
type Graph struct {
	core *core.Graph
	// pair holds, for each unordered pair key, the intersections in both
	// orientations: pair[key(a,b)] has WordA==a entries, WordB==a entries
	// are found by swapping when the caller asks Between(b, a).
	pair map[string][]Intersection
}

// Build computes the intersection graph for words in O(n^2 * L^2) time,
// where n = len(words) and L = max word length.
func Build(words []string) *Graph {
	g := &Graph{
		core: core.NewGraph(core.WithWeighted()),
		pair: make(map[string][]Intersection),
	}

	for _, w := range words {
		_ = g.core.AddVertex(w)
	}

	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			a, b := words[i], words[j]
			var found []Intersection
			for ia := 0; ia < len(a); ia++ {
				for ib := 0; ib < len(b); ib++ {
					if a[ia] == b[ib] {
						found = append(found, Intersection{WordA: a, IdxA: ia, WordB: b, IdxB: ib, Letter: a[ia]})
					}
				}
			}
			if len(found) == 0 {
				continue
			}
			g.pair[pairKey(a, b)] = found
			_, _ = g.core.AddEdge(a, b, int64(len(found)))
		}
	}

	return g
}

// Between returns every Intersection between wordA and wordB, oriented so
// that IdxA indexes into wordA and IdxB into wordB, regardless of which
// order the pair was discovered in.
func (g *Graph) Between(wordA, wordB string) []Intersection {
	found, ok := g.pair[pairKey(wordA, wordB)]
	if !ok {
		return nil
	}
	if found[0].WordA == wordA {
		return found
	}
	flipped := make([]Intersection, len(found))
	for i, it := range found {
		flipped[i] = Intersection{WordA: wordA, IdxA: it.IdxB, WordB: wordB, IdxB: it.IdxA, Letter: it.Letter}
	}
	return flipped
}

// Connections returns the total number of intersection pairs word
// participates in, across all partners. Used as a placement-ordering
// heuristic ("most-connected first").
func (g *Graph) Connections(word string) int {
	neighbors, err := g.core.Neighbors(word)
	if err != nil {
		return 0
	}
	total := 0
	for _, e := range neighbors {
		total += int(e.Weight)
	}
	return total
}

// Neighbors returns the words sharing at least one letter with word, sorted
// for deterministic iteration.
func (g *Graph) Neighbors(word string) []string {
	neighbors, err := g.core.Neighbors(word)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(neighbors))
	for _, e := range neighbors {
		other := e.To
		if other == word {
			other = e.From
		}
		out = append(out, other)
	}
	sort.Strings(out)
	return out
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%s\x00%s", a, b)
}
