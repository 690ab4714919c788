package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crosswarped.com/xwgen/pkg/grid"
)

func TestEmptyGridInvariants(t *testing.T) {
	g := grid.New()
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0, g.CellCount())
	assert.True(t, g.IsConnected())
	assert.Equal(t, 0, g.Bounds().Area())
}

func TestSetUpdatesBounds(t *testing.T) {
	g := grid.New()
	g.Set(0, 0, 'C')
	assert.Equal(t, grid.Bounds{MinRow: 0, MaxRow: 0, MinCol: 0, MaxCol: 0}, g.Bounds())

	g.Set(-2, 3, 'A')
	b := g.Bounds()
	assert.Equal(t, -2, b.MinRow)
	assert.Equal(t, 0, b.MaxRow)
	assert.Equal(t, 0, b.MinCol)
	assert.Equal(t, 3, b.MaxCol)
}

func TestPlaceWordWritesCellsAndInvariants(t *testing.T) {
	g := grid.New()
	g.PlaceWord(grid.PlacedWord{Word: "CATS", Row: 0, Col: 0, Direction: grid.Horizontal})

	for i, want := range "CATS" {
		ch, ok := g.Get(0, i)
		assert.True(t, ok)
		assert.Equal(t, byte(want), ch)
	}
	assert.Len(t, g.Placed(), 1)
}

func TestCloneIsIndependent(t *testing.T) {
	g := grid.New()
	g.PlaceWord(grid.PlacedWord{Word: "CAT", Row: 0, Col: 0, Direction: grid.Horizontal})

	clone := g.Clone()
	clone.PlaceWord(grid.PlacedWord{Word: "SAT", Row: -2, Col: 0, Direction: grid.Horizontal})

	assert.Len(t, g.Placed(), 1)
	assert.Len(t, clone.Placed(), 2)
	_, ok := g.Get(-2, 0)
	assert.False(t, ok)
}

func TestNormalizeShiftsToOrigin(t *testing.T) {
	g := grid.New()
	g.PlaceWord(grid.PlacedWord{Word: "CAT", Row: -2, Col: 3, Direction: grid.Horizontal})
	g.PlaceWord(grid.PlacedWord{Word: "CATS", Row: -2, Col: 3, Direction: grid.Vertical})

	g.Normalize()

	b := g.Bounds()
	assert.Equal(t, 0, b.MinRow)
	assert.Equal(t, 0, b.MinCol)

	ch, ok := g.Get(0, 0)
	assert.True(t, ok)
	assert.Equal(t, byte('C'), ch)
}

func TestIsConnectedDetectsIslands(t *testing.T) {
	g := grid.New()
	g.Set(0, 0, 'A')
	g.Set(5, 5, 'B')
	assert.False(t, g.IsConnected())

	g2 := grid.New()
	g2.PlaceWord(grid.PlacedWord{Word: "CATS", Row: 0, Col: 0, Direction: grid.Horizontal})
	// SAT's 'A' (index 1) lands on CATS' 'A' at (0,1).
	g2.PlaceWord(grid.PlacedWord{Word: "SAT", Row: -1, Col: 1, Direction: grid.Vertical})
	assert.True(t, g2.IsConnected())
}
