// Package score computes the overall, post-completion score of a finished
// grid: compactness, density, intersections, and symmetry, combined by
// caller-supplied weights, optionally blended with an external "fun" input.
package score

import (
	"crosswarped.com/xwgen/pkg/grid"
)

// Weights holds the overall-score combination weights. They need not sum
// to 1; the resulting scale is reported as-is so only relative comparisons
// between candidates are meaningful.
type Weights struct {
	Compactness   float64
	Density       float64
	Intersections float64
	Symmetry      float64
}

// Components holds the four [0,1] sub-scores for a completed grid.
type Components struct {
	Compactness   float64
	Density       float64
	Intersections float64
	Symmetry      float64
}

// Overall combines Components with Weights. It is a pure function of its
// inputs: Σ w_i * c_i.
func (c Components) Overall(w Weights) float64 {
	return w.Compactness*c.Compactness + w.Density*c.Density + w.Intersections*c.Intersections + w.Symmetry*c.Symmetry
}

// Compute derives Components for a completed grid. An empty grid scores 0
// on every component and never produces NaN.
func Compute(g *grid.Grid) Components {
	b := g.Bounds()
	width, height := b.Width(), b.Height()
	area := b.Area()
	filled := g.CellCount()

	if area == 0 || filled == 0 {
		return Components{}
	}

	minWH, maxWH := float64(width), float64(height)
	if width > height {
		minWH, maxWH = float64(height), float64(width)
	}
	aspect := minWH / maxWH
	density := float64(filled) / float64(area)

	return Components{
		Compactness:   0.5*aspect + 0.5*density,
		Density:       density,
		Intersections: intersectionComponent(g),
		Symmetry:      symmetryComponent(g, b),
	}
}

// intersectionComponent returns min(1, crossings/(len(placed)-1)), where a
// crossing is any cell covered by 2 or more placed words.
func intersectionComponent(g *grid.Grid) float64 {
	placed := g.Placed()
	if len(placed) <= 1 {
		return 0
	}

	coverage := make(map[grid.Cell]int)
	for _, p := range placed {
		for _, c := range p.Cells() {
			coverage[c]++
		}
	}

	crossings := 0
	for _, n := range coverage {
		if n >= 2 {
			crossings++
		}
	}

	ratio := float64(crossings) / float64(len(placed)-1)
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

// symmetryComponent averages, over every filled cell, whether the cell's
// point reflection across the grid's geometric center is also filled.
// Mirror coordinates are rounded since the center may be half-integer.
func symmetryComponent(g *grid.Grid, b grid.Bounds) float64 {
	cells := g.Cells()
	if len(cells) == 0 {
		return 0
	}

	centerRow := float64(b.MinRow+b.MaxRow) / 2
	centerCol := float64(b.MinCol+b.MaxCol) / 2

	matches := 0
	for c := range cells {
		mirrorRow := round(2*centerRow - float64(c.Row))
		mirrorCol := round(2*centerCol - float64(c.Col))
		if _, ok := cells[grid.Cell{Row: mirrorRow, Col: mirrorCol}]; ok {
			matches++
		}
	}

	return float64(matches) / float64(len(cells))
}

func round(f float64) int {
	if f >= 0 {
		return int(f + 0.5)
	}
	return int(f - 0.5)
}

// FinalScore blends a grid's overall score with an external fun-score
// input: final = 0.85*grid + 0.15*fun when fun is present, else grid alone.
func FinalScore(overall float64, fun *float64) float64 {
	if fun == nil {
		return overall
	}
	return 0.85*overall + 0.15*(*fun)
}
