package generator

import (
	"crosswarped.com/xwgen/pkg/score"
	"crosswarped.com/xwgen/pkg/search"
	"crosswarped.com/xwgen/pkg/xerrors"
)

// Params configures a single Generate call. Every field is optional; the
// zero value of Params is not meaningful on its own — use
// DefaultParams() and override individual fields.
type Params struct {
	MinWordLength          int
	MaxWordLength          int
	MinWordCount           int
	MaxWordCount           int
	MustIncludeLongestWord bool
	PlacementStrategy      search.Strategy
	MaxPlacementCandidates int
	MaxBacktrackDepth      int
	CompactnessWeight      float64
	DensityWeight          float64
	IntersectionWeight     float64
	SymmetryWeight         float64
	CandidatesToGenerate   int
	Seed                   int64
	// FunScore, when non-nil, is an external fun_score in [0,1] supplied
	// alongside the letters (e.g. from a curated wordlist entry for the
	// target level). It blends into each candidate's final score per
	// score.FinalScore — the generator's only dependency on the curation
	// layer. Nil means rank by grid score alone.
	FunScore *float64
}

// DefaultParams returns spec's documented defaults. Seed defaults to 0;
// callers wanting a fresh seed per call should set Seed themselves.
func DefaultParams() Params {
	return Params{
		MinWordLength:          3,
		MaxWordLength:          10,
		MinWordCount:           4,
		MaxWordCount:           8,
		MustIncludeLongestWord: true,
		PlacementStrategy:      search.LongestFirst,
		MaxPlacementCandidates: 10,
		MaxBacktrackDepth:      5,
		CompactnessWeight:      0.4,
		DensityWeight:          0.2,
		IntersectionWeight:     0.3,
		SymmetryWeight:         0.1,
		CandidatesToGenerate:   10,
		Seed:                   0,
	}
}

// normalize fills any zero-valued field left unset relative to
// DefaultParams and validates the combination, returning a *BadParam on
// the first violation found.
func (p Params) normalize() (Params, error) {
	def := DefaultParams()

	if p.MinWordLength == 0 {
		p.MinWordLength = def.MinWordLength
	}
	if p.MaxWordLength == 0 {
		p.MaxWordLength = def.MaxWordLength
	}
	if p.MinWordCount == 0 {
		p.MinWordCount = def.MinWordCount
	}
	if p.MaxWordCount == 0 {
		p.MaxWordCount = def.MaxWordCount
	}
	if p.MaxPlacementCandidates == 0 {
		p.MaxPlacementCandidates = def.MaxPlacementCandidates
	}
	if p.MaxBacktrackDepth == 0 {
		p.MaxBacktrackDepth = def.MaxBacktrackDepth
	}
	if p.CandidatesToGenerate == 0 {
		p.CandidatesToGenerate = def.CandidatesToGenerate
	}
	if p.CompactnessWeight == 0 && p.DensityWeight == 0 && p.IntersectionWeight == 0 && p.SymmetryWeight == 0 {
		p.CompactnessWeight, p.DensityWeight, p.IntersectionWeight, p.SymmetryWeight =
			def.CompactnessWeight, def.DensityWeight, def.IntersectionWeight, def.SymmetryWeight
	}

	if p.MaxWordLength < p.MinWordLength {
		return p, &xerrors.BadParam{Field: "max_word_length", Reason: "must be >= min_word_length"}
	}
	if p.MinWordCount < 1 {
		return p, &xerrors.BadParam{Field: "min_word_count", Reason: "must be >= 1"}
	}
	if p.MaxWordCount < p.MinWordCount {
		return p, &xerrors.BadParam{Field: "max_word_count", Reason: "must be >= min_word_count"}
	}
	if p.MaxPlacementCandidates < 1 {
		return p, &xerrors.BadParam{Field: "max_placement_candidates", Reason: "must be >= 1"}
	}
	if p.CandidatesToGenerate < 1 {
		return p, &xerrors.BadParam{Field: "candidates_to_generate", Reason: "must be >= 1"}
	}

	return p, nil
}

func (p Params) weights() score.Weights {
	return score.Weights{
		Compactness:   p.CompactnessWeight,
		Density:       p.DensityWeight,
		Intersections: p.IntersectionWeight,
		Symmetry:      p.SymmetryWeight,
	}
}

func (p Params) searchOptions() search.Options {
	return search.Options{
		MinWordLen:             p.MinWordLength,
		MaxWordCount:           p.MaxWordCount,
		MinWordCount:           p.MinWordCount,
		MustIncludeLongest:     p.MustIncludeLongestWord,
		Strategy:               p.PlacementStrategy,
		MaxPlacementCandidates: p.MaxPlacementCandidates,
		CandidatesToGenerate:   p.CandidatesToGenerate,
		Seed:                   p.Seed,
	}
}
