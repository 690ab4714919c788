package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/xwgen/pkg/intersect"
	"crosswarped.com/xwgen/pkg/search"
	"crosswarped.com/xwgen/pkg/xerrors"
)

func defaultOpts(seed int64) search.Options {
	return search.Options{
		MinWordLen:             3,
		MaxWordCount:           8,
		MinWordCount:           4,
		MustIncludeLongest:     true,
		Strategy:               search.LongestFirst,
		MaxPlacementCandidates: 10,
		CandidatesToGenerate:   10,
		Seed:                   seed,
	}
}

func TestRunS1TinyCrossword(t *testing.T) {
	words := []string{"CAT", "CATS", "SAT", "ACT", "CAST"}
	igraph := intersect.Build(words)

	grids, err := search.Run(context.Background(), words, igraph, defaultOpts(1))
	require.NoError(t, err)
	require.NotEmpty(t, grids)

	g := grids[0]
	assert.True(t, g.IsConnected())
	assert.Equal(t, 0, g.Bounds().MinRow)
	assert.Equal(t, 0, g.Bounds().MinCol)

	placedNames := make(map[string]bool)
	for _, p := range g.Placed() {
		placedNames[p.Word] = true
	}
	assert.True(t, placedNames["CATS"] || placedNames["CAST"], "longest word should be placed")
}

func TestRunInsufficientWords(t *testing.T) {
	words := []string{"AT", "IT"} // below MinWordLen(3), so pool is empty
	igraph := intersect.Build(words)

	_, err := search.Run(context.Background(), words, igraph, defaultOpts(1))
	require.Error(t, err)
	var insuff *xerrors.InsufficientWords
	assert.ErrorAs(t, err, &insuff)
}

func TestRunDeterministicForFixedSeed(t *testing.T) {
	words := []string{"HOME", "WORK", "HORK", "MORE", "ROW", "HOW", "OWE", "WOE"}
	igraph := intersect.Build(words)

	opts := defaultOpts(42)
	a, errA := search.Run(context.Background(), words, igraph, opts)
	b, errB := search.Run(context.Background(), words, igraph, opts)
	require.NoError(t, errA)
	require.NoError(t, errB)
	require.Equal(t, len(a), len(b))

	for i := range a {
		assert.Equal(t, a[i].Placed(), b[i].Placed())
	}
}

func TestRunRespectsCancellation(t *testing.T) {
	words := []string{"CAT", "CATS", "SAT", "ACT", "CAST"}
	igraph := intersect.Build(words)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Run(ctx, words, igraph, defaultOpts(1))
	require.Error(t, err)
	var cancelled *xerrors.Cancelled
	assert.ErrorAs(t, err, &cancelled)
}

func TestCrosswordLegalityAcrossPlacedWords(t *testing.T) {
	words := []string{"HOME", "WORK", "HOW", "ROW", "OWE", "WOE"}
	igraph := intersect.Build(words)

	grids, err := search.Run(context.Background(), words, igraph, defaultOpts(7))
	require.NoError(t, err)
	require.NotEmpty(t, grids)

	g := grids[0]
	placed := g.Placed()
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			overlap := 0
			cellsI := make(map[string]byte)
			for _, c := range placed[i].Cells() {
				ch, _ := g.Get(c.Row, c.Col)
				cellsI[key(c.Row, c.Col)] = ch
			}
			for _, c := range placed[j].Cells() {
				if ch, ok := cellsI[key(c.Row, c.Col)]; ok {
					overlap++
					got, _ := g.Get(c.Row, c.Col)
					assert.Equal(t, ch, got)
				}
			}
			assert.LessOrEqual(t, overlap, 1)
		}
	}
}

func key(row, col int) string {
	return string(rune(row)) + "," + string(rune(col))
}
