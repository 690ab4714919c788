// Package validate implements the five-rule placement legality check: given
// a proposed word placement and the grid it would land on, decide whether
// it is a legal crossword placement and, if not, which rule it breaks.
package validate

import (
	"fmt"

	"crosswarped.com/xwgen/pkg/grid"
)

// Rule identifies which of the five placement rules failed.
type Rule string

const (
	RuleLetterAgreement Rule = "R1_LETTER_AGREEMENT"
	RuleNoParallelAdj   Rule = "R2_NO_PARALLEL_ADJACENCY"
	RuleBoundaryBefore  Rule = "R3_BOUNDARY_BEFORE"
	RuleBoundaryAfter   Rule = "R4_BOUNDARY_AFTER"
	RuleAnchored        Rule = "R5_ANCHORED"
)

// Failure names the rule a candidate placement violated and where.
type Failure struct {
	Rule Rule
	At   grid.Cell
}

func (f *Failure) Error() string {
	return fmt.Sprintf("placement rejected by %s at (%d,%d)", f.Rule, f.At.Row, f.At.Col)
}

// Validate checks candidate against g in fixed order R1..R5, returning the
// first rule it breaks, or nil if the placement is legal. Validate is pure:
// it never mutates g.
func Validate(candidate grid.PlacedWord, g *grid.Grid) *Failure {
	cells := candidate.Cells()

	// R1: letter agreement at every cell the word would occupy.
	intersectionCell := make([]bool, len(cells))
	for i, c := range cells {
		existing, occupied := g.Get(c.Row, c.Col)
		if !occupied {
			continue
		}
		if existing != candidate.Word[i] {
			return &Failure{Rule: RuleLetterAgreement, At: c}
		}
		intersectionCell[i] = true
	}

	// R2: non-intersection cells must have empty perpendicular neighbors.
	for i, c := range cells {
		if intersectionCell[i] {
			continue
		}
		for _, n := range perpendicularNeighbors(c, candidate.Direction) {
			if _, occupied := g.Get(n.Row, n.Col); occupied {
				return &Failure{Rule: RuleNoParallelAdj, At: n}
			}
		}
	}

	// R3/R4: the cells immediately before and after the word must be empty.
	before := beforeCell(candidate)
	if _, occupied := g.Get(before.Row, before.Col); occupied {
		return &Failure{Rule: RuleBoundaryBefore, At: before}
	}
	after := afterCell(candidate)
	if _, occupied := g.Get(after.Row, after.Col); occupied {
		return &Failure{Rule: RuleBoundaryAfter, At: after}
	}

	// R5: anchored placement, except for the very first word on the grid.
	if !g.IsEmpty() {
		anyIntersection := false
		for _, v := range intersectionCell {
			if v {
				anyIntersection = true
				break
			}
		}
		if !anyIntersection {
			return &Failure{Rule: RuleAnchored, At: cells[0]}
		}
	}

	return nil
}

func perpendicularNeighbors(c grid.Cell, dir grid.Direction) [2]grid.Cell {
	if dir == grid.Horizontal {
		return [2]grid.Cell{{Row: c.Row - 1, Col: c.Col}, {Row: c.Row + 1, Col: c.Col}}
	}
	return [2]grid.Cell{{Row: c.Row, Col: c.Col - 1}, {Row: c.Row, Col: c.Col + 1}}
}

func beforeCell(p grid.PlacedWord) grid.Cell {
	if p.Direction == grid.Horizontal {
		return grid.Cell{Row: p.Row, Col: p.Col - 1}
	}
	return grid.Cell{Row: p.Row - 1, Col: p.Col}
}

func afterCell(p grid.PlacedWord) grid.Cell {
	last := len(p.Word) - 1
	if p.Direction == grid.Horizontal {
		return grid.Cell{Row: p.Row, Col: p.Col + last + 1}
	}
	return grid.Cell{Row: p.Row + last + 1, Col: p.Col}
}
