// Package generator implements the generation façade: chaining the word
// finder, intersection graph, placement search, and scorer into ranked,
// deduplicated Puzzle candidates.
package generator

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"crosswarped.com/xwgen/pkg/dictionary"
	"crosswarped.com/xwgen/pkg/grid"
	"crosswarped.com/xwgen/pkg/intersect"
	"crosswarped.com/xwgen/pkg/score"
	"crosswarped.com/xwgen/pkg/search"
	"crosswarped.com/xwgen/pkg/xerrors"
)

// Puzzle is one fully-assembled, scored crossword candidate.
type Puzzle struct {
	ID          int
	Letters     string
	PlacedWords []grid.PlacedWord
	BonusWords  []string
	Grid        *grid.Grid
	Metrics     Metrics
}

// Metrics summarizes a completed grid, per spec's PuzzleMetrics.
type Metrics struct {
	GridWidth         int
	GridHeight        int
	TotalCells        int
	FilledCells       int
	Density           float64
	IntersectionCount int
	OverallScore      float64
	FinalScore        float64
}

// Result is Generate's return value: the best puzzle plus every ranked
// candidate that survived deduplication, truncated to
// params.CandidatesToGenerate.
type Result struct {
	Best          Puzzle
	AllCandidates []Puzzle
}

// defaultLogger is the package-level default used when no logger is supplied via
// WithLogger. It is a no-op logger until a caller opts in.
var defaultLogger = zerolog.Nop()

// Option configures an optional Generate dependency.
type Option func(*config)

type config struct {
	logger zerolog.Logger
}

// WithLogger injects a zerolog.Logger for attempt/progress logging.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Generate runs the full B→C→F→G pipeline for a letter bag against a
// dictionary, returning ranked, deduplicated puzzle candidates.
func Generate(ctx context.Context, letterBag string, dict dictionary.Dictionary, params Params, opts ...Option) (Result, error) {
	cfg := config{logger: defaultLogger}
	for _, o := range opts {
		o(&cfg)
	}

	p, err := params.normalize()
	if err != nil {
		return Result{}, err
	}

	inBounds := false
	for _, w := range dict.Words() {
		if len(w) >= p.MinWordLength && len(w) <= p.MaxWordLength {
			inBounds = true
			break
		}
	}
	if !inBounds {
		return Result{}, &xerrors.EmptyDictionary{}
	}

	validWords, err := dictionary.FindValidWords(ctx, letterBag, dict, p.MinWordLength, p.MaxWordLength)
	if err != nil {
		return Result{}, wrapCancellation(err)
	}

	cfg.logger.Debug().Str("letters", letterBag).Int("valid_words", len(validWords)).Msg("found valid words")

	igraph := intersect.Build(validWords)

	grids, err := search.Run(ctx, validWords, igraph, p.searchOptions())
	if err != nil {
		return Result{}, wrapCancellation(err)
	}

	cfg.logger.Debug().Int("grids_found", len(grids)).Msg("placement search complete")

	weights := p.weights()
	validSet := make(map[string]struct{}, len(validWords))
	for _, w := range validWords {
		validSet[w] = struct{}{}
	}

	seen := make(map[string]struct{}, len(grids))
	var puzzles []Puzzle
	nextID := 1

	for _, g := range grids {
		hash := canonicalHash(g)
		if _, dup := seen[hash]; dup {
			continue
		}
		seen[hash] = struct{}{}

		components := score.Compute(g)
		overall := components.Overall(weights)
		final := score.FinalScore(overall, p.FunScore)

		placedSet := make(map[string]struct{}, len(g.Placed()))
		for _, pw := range g.Placed() {
			placedSet[pw.Word] = struct{}{}
		}

		var bonus []string
		for w := range validSet {
			if _, placed := placedSet[w]; !placed {
				bonus = append(bonus, w)
			}
		}
		sort.Strings(bonus)

		b := g.Bounds()
		puzzles = append(puzzles, Puzzle{
			ID:          nextID,
			Letters:     letterBag,
			PlacedWords: g.Placed(),
			BonusWords:  bonus,
			Grid:        g,
			Metrics: Metrics{
				GridWidth:         b.Width(),
				GridHeight:        b.Height(),
				TotalCells:        b.Area(),
				FilledCells:       g.CellCount(),
				Density:           components.Density,
				IntersectionCount: countIntersections(g),
				OverallScore:      overall,
				FinalScore:        final,
			},
		})
		nextID++
	}

	if len(puzzles) == 0 {
		return Result{}, &xerrors.NoValidLayout{Attempts: 2 * p.CandidatesToGenerate}
	}

	sort.SliceStable(puzzles, func(i, j int) bool {
		return puzzles[i].Metrics.FinalScore > puzzles[j].Metrics.FinalScore
	})

	if len(puzzles) > p.CandidatesToGenerate {
		puzzles = puzzles[:p.CandidatesToGenerate]
	}

	cfg.logger.Info().Int("candidates", len(puzzles)).Float64("best_score", puzzles[0].Metrics.FinalScore).Msg("generation complete")

	return Result{Best: puzzles[0], AllCandidates: puzzles}, nil
}

// canonicalHash is the deduplication key: sorted "(r,c):L" pairs joined by
// "|", computed on a normalized grid so translation doesn't matter.
func canonicalHash(g *grid.Grid) string {
	clone := g.Clone()
	clone.Normalize()

	cells := clone.Cells()
	keys := make([]string, 0, len(cells))
	for c, ch := range cells {
		keys = append(keys, fmt.Sprintf("(%d,%d):%c", c.Row, c.Col, ch))
	}
	sort.Strings(keys)

	hash := ""
	for i, k := range keys {
		if i > 0 {
			hash += "|"
		}
		hash += k
	}
	return hash
}

func countIntersections(g *grid.Grid) int {
	coverage := make(map[grid.Cell]int)
	for _, p := range g.Placed() {
		for _, c := range p.Cells() {
			coverage[c]++
		}
	}
	count := 0
	for _, n := range coverage {
		if n >= 2 {
			count++
		}
	}
	return count
}

func wrapCancellation(err error) error {
	if _, ok := err.(*xerrors.Cancelled); ok {
		return err
	}
	if err == context.Canceled || err == context.DeadlineExceeded {
		return &xerrors.Cancelled{Cause: err}
	}
	return err
}
