package score_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"crosswarped.com/xwgen/pkg/grid"
	"crosswarped.com/xwgen/pkg/score"
)

func TestComputeEmptyGridIsZeroNeverNaN(t *testing.T) {
	g := grid.New()
	c := score.Compute(g)
	assert.Equal(t, score.Components{}, c)
	assert.False(t, math.IsNaN(c.Overall(score.Weights{Compactness: 0.4, Density: 0.2, Intersections: 0.3, Symmetry: 0.1})))
}

func TestComputeComponentsInUnitRange(t *testing.T) {
	g := grid.New()
	g.PlaceWord(grid.PlacedWord{Word: "CATS", Row: 0, Col: 0, Direction: grid.Horizontal})
	g.PlaceWord(grid.PlacedWord{Word: "SAT", Row: -1, Col: 1, Direction: grid.Vertical})

	c := score.Compute(g)
	for _, v := range []float64{c.Compactness, c.Density, c.Intersections, c.Symmetry} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestOverallIsPureFunctionOfComponentsAndWeights(t *testing.T) {
	c := score.Components{Compactness: 0.5, Density: 0.6, Intersections: 0.7, Symmetry: 0.8}
	w := score.Weights{Compactness: 0.4, Density: 0.2, Intersections: 0.3, Symmetry: 0.1}
	want := 0.4*0.5 + 0.2*0.6 + 0.3*0.7 + 0.1*0.8
	assert.InDelta(t, want, c.Overall(w), 1e-9)
}

func TestFinalScoreMixesFunWhenPresent(t *testing.T) {
	fun := 1.0
	assert.InDelta(t, 0.85*0.5+0.15*1.0, score.FinalScore(0.5, &fun), 1e-9)
	assert.Equal(t, 0.5, score.FinalScore(0.5, nil))
}

func TestSymmetryPerfectForFullyMirroredGrid(t *testing.T) {
	g := grid.New()
	g.Set(0, 0, 'A')
	g.Set(0, 2, 'A')
	g.Set(2, 0, 'A')
	g.Set(2, 2, 'A')
	g.Set(1, 1, 'A') // center, self-mirrors

	c := score.Compute(g)
	assert.Equal(t, 1.0, c.Symmetry)
}
