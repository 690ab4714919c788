package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crosswarped.com/xwgen/pkg/grid"
	"crosswarped.com/xwgen/pkg/validate"
)

func TestFirstWordExemptFromAnchoring(t *testing.T) {
	g := grid.New()
	f := validate.Validate(grid.PlacedWord{Word: "CATS", Row: 0, Col: 0, Direction: grid.Horizontal}, g)
	assert.Nil(t, f)
}

func TestSecondWordRequiresIntersection(t *testing.T) {
	g := grid.New()
	g.PlaceWord(grid.PlacedWord{Word: "CATS", Row: 0, Col: 0, Direction: grid.Horizontal})

	f := validate.Validate(grid.PlacedWord{Word: "DOG", Row: 5, Col: 5, Direction: grid.Horizontal}, g)
	assert.NotNil(t, f)
	assert.Equal(t, validate.RuleAnchored, f.Rule)
}

func TestLegalIntersection(t *testing.T) {
	g := grid.New()
	g.PlaceWord(grid.PlacedWord{Word: "CATS", Row: 0, Col: 0, Direction: grid.Horizontal})

	// SAT crossing at the shared 'A', vertical through col 1.
	f := validate.Validate(grid.PlacedWord{Word: "SAT", Row: -1, Col: 1, Direction: grid.Vertical}, g)
	assert.Nil(t, f)
}

func TestLetterDisagreementRejected(t *testing.T) {
	g := grid.New()
	g.PlaceWord(grid.PlacedWord{Word: "CATS", Row: 0, Col: 0, Direction: grid.Horizontal})

	// Crosses CATS at col 1 ('A') but claims 'O' there.
	f := validate.Validate(grid.PlacedWord{Word: "DOG", Row: -1, Col: 1, Direction: grid.Vertical}, g)
	assert.NotNil(t, f)
	assert.Equal(t, validate.RuleLetterAgreement, f.Rule)
}

func TestParallelAdjacencyRejected(t *testing.T) {
	g := grid.New()
	g.PlaceWord(grid.PlacedWord{Word: "CATS", Row: 0, Col: 0, Direction: grid.Horizontal})
	g.PlaceWord(grid.PlacedWord{Word: "SAT", Row: -1, Col: 1, Direction: grid.Vertical})

	// A horizontal word directly above row 0 sharing no intersection cell
	// would create an illegal parallel adjacency against CATS.
	// DOG at (-1,2) sits directly above CATS' 'T' at (0,2).
	f := validate.Validate(grid.PlacedWord{Word: "DOG", Row: -1, Col: 2, Direction: grid.Horizontal}, g)
	assert.NotNil(t, f)
	assert.Equal(t, validate.RuleNoParallelAdj, f.Rule)
}

func TestBoundaryRejectsAdjacentWord(t *testing.T) {
	g := grid.New()
	g.PlaceWord(grid.PlacedWord{Word: "CAT", Row: 0, Col: 0, Direction: grid.Horizontal})

	// DOG would start immediately after CAT's last letter with no gap.
	f := validate.Validate(grid.PlacedWord{Word: "DOG", Row: 0, Col: 3, Direction: grid.Horizontal}, g)
	assert.NotNil(t, f)
	assert.Equal(t, validate.RuleBoundaryBefore, f.Rule)
}

func TestValidateDoesNotMutateGrid(t *testing.T) {
	g := grid.New()
	g.PlaceWord(grid.PlacedWord{Word: "CATS", Row: 0, Col: 0, Direction: grid.Horizontal})
	before := g.CellCount()

	validate.Validate(grid.PlacedWord{Word: "SAT", Row: -1, Col: 1, Direction: grid.Vertical}, g)

	assert.Equal(t, before, g.CellCount())
}
