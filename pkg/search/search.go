// Package search implements the placement search: ordering candidate
// words, generating anchor candidates from the intersection graph,
// validating them, scoring them with the placement heuristic, and
// backtracking over the result.
package search

import (
	"context"
	"sort"

	"crosswarped.com/xwgen/pkg/grid"
	"crosswarped.com/xwgen/pkg/intersect"
	"crosswarped.com/xwgen/pkg/prng"
	"crosswarped.com/xwgen/pkg/validate"
	"crosswarped.com/xwgen/pkg/xerrors"
)

// Strategy selects how candidate words are ordered before placement.
type Strategy int

const (
	LongestFirst Strategy = iota
	MostConnectedFirst
	Random
)

// Options configures a single generation's placement search.
type Options struct {
	MinWordLen             int
	MaxWordCount           int
	MinWordCount           int
	MustIncludeLongest     bool
	Strategy               Strategy
	MaxPlacementCandidates int
	CandidatesToGenerate   int
	Seed                   int64
}

// candidatePlacement is a validator-approved placement awaiting selection,
// i.e. spec's PlacementCandidate, with its placement-heuristic score.
type candidatePlacement struct {
	placement         grid.PlacedWord
	intersectionCount int
	score             float64
}

// Run attempts to build up to 2*CandidatesToGenerate grids and returns the
// first CandidatesToGenerate that are fully connected.
func Run(ctx context.Context, validWords []string, igraph *intersect.Graph, opts Options) ([]*grid.Grid, error) {
	words := selectWords(validWords, opts)
	if len(words) < opts.MinWordCount {
		return nil, &xerrors.InsufficientWords{Found: len(words), Required: opts.MinWordCount}
	}

	var results []*grid.Grid
	maxAttempts := 2 * opts.CandidatesToGenerate
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	for attempt := 0; attempt < maxAttempts && len(results) < opts.CandidatesToGenerate; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, &xerrors.Cancelled{Cause: err}
		}

		ordered := orderForAttempt(words, igraph, attempt, opts)

		g, ok, err := placeAll(ctx, ordered, igraph, opts)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		g.Normalize()
		if !g.IsConnected() {
			continue
		}
		results = append(results, g)
	}

	if len(results) == 0 {
		return nil, &xerrors.NoValidLayout{Attempts: maxAttempts}
	}

	return results, nil
}

// selectWords filters validWords down to those of at least MinWordLen. The
// strategy-specific ordering and MaxWordCount truncation happen per attempt
// in orderForAttempt, since MostConnectedFirst depends on the intersection
// graph and Random depends on the attempt's seed.
func selectWords(validWords []string, opts Options) []string {
	var pool []string
	for _, w := range validWords {
		if len(w) >= opts.MinWordLen {
			pool = append(pool, w)
		}
	}
	return pool
}

// orderForAttempt orders words by the configured strategy, pins the
// longest word to index 0 when MustIncludeLongest is set, truncates to
// MaxWordCount, and — for attempts beyond the first — lightly perturbs the
// result by swapping adjacent pairs whenever a seeded roll exceeds 0.7.
func orderForAttempt(words []string, igraph *intersect.Graph, attempt int, opts Options) []string {
	ordered := make([]string, len(words))
	copy(ordered, words)

	switch opts.Strategy {
	case MostConnectedFirst:
		sort.SliceStable(ordered, func(i, j int) bool {
			ci, cj := igraph.Connections(ordered[i]), igraph.Connections(ordered[j])
			if ci != cj {
				return ci > cj
			}
			return len(ordered[i]) > len(ordered[j])
		})
	case Random:
		src := prng.New(opts.Seed + int64(attempt))
		for i := len(ordered) - 1; i > 0; i-- {
			j := src.IntN(i + 1)
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	default: // LongestFirst
		sort.SliceStable(ordered, func(i, j int) bool {
			if len(ordered[i]) != len(ordered[j]) {
				return len(ordered[i]) > len(ordered[j])
			}
			return ordered[i] < ordered[j]
		})
	}

	if opts.MustIncludeLongest && len(ordered) > 0 {
		longestIdx := 0
		for i, w := range ordered {
			if len(w) > len(ordered[longestIdx]) {
				longestIdx = i
			}
		}
		ordered[0], ordered[longestIdx] = ordered[longestIdx], ordered[0]
	}

	if opts.MaxWordCount > 0 && len(ordered) > opts.MaxWordCount {
		ordered = ordered[:opts.MaxWordCount]
	}

	if attempt > 0 {
		prng.ShuffleAdjacent(prng.New(opts.Seed+int64(attempt)*1000), ordered, 0.7)
	}

	return ordered
}

// placeAll runs the recursive backtracking placement over words in order,
// returning the completed grid, whether placement fully succeeded, and any
// hard error (e.g. cancellation).
func placeAll(ctx context.Context, words []string, igraph *intersect.Graph, opts Options) (*grid.Grid, bool, error) {
	return place(ctx, words, 0, grid.New(), igraph, opts)
}

func place(ctx context.Context, words []string, index int, g *grid.Grid, igraph *intersect.Graph, opts Options) (*grid.Grid, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, &xerrors.Cancelled{Cause: err}
	}

	if index == len(words) {
		return g, true, nil
	}

	w := words[index]
	candidates := candidatesFor(w, g, igraph)

	var approved []candidatePlacement
	for _, c := range candidates {
		if f := validate.Validate(c, g); f == nil {
			approved = append(approved, score(c, g))
		}
	}

	sort.SliceStable(approved, func(i, j int) bool { return approved[i].score > approved[j].score })

	limit := opts.MaxPlacementCandidates
	if limit <= 0 || limit > len(approved) {
		limit = len(approved)
	}

	for i := 0; i < limit; i++ {
		clone := g.Clone()
		clone.PlaceWord(approved[i].placement)

		result, ok, err := place(ctx, words, index+1, clone, igraph, opts)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return result, true, nil
		}
	}

	return nil, false, nil
}

// candidatesFor enumerates every legal-shape anchor for w against the
// current grid: two orientations at the origin if the grid is empty,
// otherwise one per intersection with an already-placed word, deduplicated
// by (row, col, direction).
func candidatesFor(w string, g *grid.Grid, igraph *intersect.Graph) []grid.PlacedWord {
	if g.IsEmpty() {
		return []grid.PlacedWord{
			{Word: w, Row: 0, Col: 0, Direction: grid.Horizontal},
			{Word: w, Row: 0, Col: 0, Direction: grid.Vertical},
		}
	}

	type key struct {
		row, col int
		dir      grid.Direction
	}
	seen := make(map[key]bool)
	var out []grid.PlacedWord

	for _, p := range g.Placed() {
		for _, it := range igraph.Between(w, p.Word) {
			var newRow, newCol int
			var newDir grid.Direction
			if p.Direction == grid.Horizontal {
				newDir = grid.Vertical
				newCol = p.Col + it.IdxB
				newRow = p.Row - it.IdxA
			} else {
				newDir = grid.Horizontal
				newRow = p.Row + it.IdxB
				newCol = p.Col - it.IdxA
			}

			k := key{row: newRow, col: newCol, dir: newDir}
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, grid.PlacedWord{Word: w, Row: newRow, Col: newCol, Direction: newDir})
		}
	}

	return out
}

// score computes the placement heuristic for a candidate: aspect_ratio*100
// - expansion_penalty + intersections*10. An empty grid values any
// candidate at 100.
func score(c grid.PlacedWord, g *grid.Grid) candidatePlacement {
	if g.IsEmpty() {
		return candidatePlacement{placement: c, intersectionCount: 0, score: 100}
	}

	oldBounds := g.Bounds()
	oldArea := oldBounds.Area()

	newBounds := expandedBounds(oldBounds, c)
	newArea := newBounds.Area()

	intersections := 0
	for _, cell := range c.Cells() {
		if _, occupied := g.Get(cell.Row, cell.Col); occupied {
			intersections++
		}
	}

	aspect := 0.0
	w, h := newBounds.Width(), newBounds.Height()
	if w > 0 && h > 0 {
		if w < h {
			aspect = float64(w) / float64(h)
		} else {
			aspect = float64(h) / float64(w)
		}
	}

	s := aspect*100 - float64(newArea-oldArea) + float64(intersections)*10
	return candidatePlacement{placement: c, intersectionCount: intersections, score: s}
}

func expandedBounds(b grid.Bounds, c grid.PlacedWord) grid.Bounds {
	cells := c.Cells()
	minRow, maxRow, minCol, maxCol := b.MinRow, b.MaxRow, b.MinCol, b.MaxCol
	if b.Area() == 0 {
		minRow, maxRow = cells[0].Row, cells[0].Row
		minCol, maxCol = cells[0].Col, cells[0].Col
	}
	for _, cell := range cells {
		if cell.Row < minRow {
			minRow = cell.Row
		}
		if cell.Row > maxRow {
			maxRow = cell.Row
		}
		if cell.Col < minCol {
			minCol = cell.Col
		}
		if cell.Col > maxCol {
			maxCol = cell.Col
		}
	}
	return grid.Bounds{MinRow: minRow, MaxRow: maxRow, MinCol: minCol, MaxCol: maxCol}
}
