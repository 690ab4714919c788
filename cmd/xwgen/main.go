package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"crosswarped.com/xwgen/internal/xlog"
	"crosswarped.com/xwgen/pkg/curate"
	"crosswarped.com/xwgen/pkg/dictionary"
	"crosswarped.com/xwgen/pkg/generator"
	"crosswarped.com/xwgen/pkg/search"
)

func main() {
	_ = godotenv.Load()
	logger := xlog.FromEnv()

	letterBag := flag.String("letters", "CATS", "the letter bag to generate a crossword from")
	wordlistPath := flag.String("wordlist", "", "newline-delimited dictionary file; empty uses a small built-in sample")
	timeout := flag.Duration("timeout", 10*time.Second, "generation timeout")
	seed := flag.Int64("seed", 1, "reproducibility seed")
	strategy := flag.String("strategy", "longest", "placement strategy: longest, connected, random")
	loadFromCloud := flag.Bool("cloud", false, "curate a raw/excluded wordlist from BigQuery instead of generating")
	scope := flag.String("scope", "regular", "BigQuery word scope, used with -cloud")
	obscure := flag.Bool("obscure", false, "include obscure words, used with -cloud")
	project := flag.String("project", "", "GCP project ID, used with -cloud")
	dataset := flag.String("dataset", "xwgen", "BigQuery dataset name, used with -cloud")
	curateOut := flag.String("out", "wordlist.json", "curated wordlist output path, used with -cloud")

	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *loadFromCloud {
		runCuration(ctx, logger, *project, *dataset, *scope, *obscure, *curateOut)
		return
	}

	words := sampleWords
	if *wordlistPath != "" {
		loaded, err := readWordlist(*wordlistPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "loading wordlist:", err)
			os.Exit(1)
		}
		words = loaded
	}
	dict := dictionary.New(words)

	params := generator.DefaultParams()
	params.Seed = *seed
	params.PlacementStrategy = parseStrategy(*strategy)

	result, err := generator.Generate(ctx, *letterBag, dict, params, generator.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate:", err)
		os.Exit(1)
	}

	fmt.Println(renderGrid(result.Best))
	fmt.Println("bonus words:", strings.Join(result.Best.BonusWords, ", "))
	fmt.Printf("overall score: %.3f\n", result.Best.Metrics.OverallScore)
	fmt.Println("candidates found:", len(result.AllCandidates))

	if err := ctx.Err(); err != nil {
		fmt.Println("context error:", err)
	}
}

func runCuration(ctx context.Context, logger zerolog.Logger, project, dataset, scope string, obscure bool, out string) {
	source := curate.CloudSource{ProjectID: project, Dataset: dataset, Scope: scope, Obscure: obscure}

	raw, excluded, err := source.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading from cloud:", err)
		os.Exit(1)
	}

	wl, stats, err := curate.Curate(ctx, raw, excluded, curate.Options{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Logger:      logger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "curating:", err)
		os.Exit(1)
	}

	if err := wl.Dump(out); err != nil {
		fmt.Fprintln(os.Stderr, "writing wordlist:", err)
		os.Exit(1)
	}

	fmt.Printf("curated %d words (original %d, filtered %d), wrote %s\n", stats.Kept, stats.Original, stats.FilteredOut, out)
	for length := 3; length <= 8; length++ {
		fmt.Printf("  length %d: %d words\n", length, len(wl.WordsByLength[length]))
	}
}

var sampleWords = []string{
	"CAT", "CATS", "SAT", "ACT", "CAST", "SCAT", "TACS",
	"HOME", "WORK", "HORK", "MORE", "ROW", "HOW", "OWE", "WOE", "MOW",
	"READS", "DEAR", "DEARS", "EAR", "EARS", "SEA", "SEAR", "ARE", "ERA", "RED", "RAD",
}

func readWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			words = append(words, line)
		}
	}
	return words, scanner.Err()
}

func parseStrategy(s string) search.Strategy {
	switch strings.ToLower(s) {
	case "connected":
		return search.MostConnectedFirst
	case "random":
		return search.Random
	default:
		return search.LongestFirst
	}
}

func renderGrid(p generator.Puzzle) string {
	b := p.Grid.Bounds()
	var sb strings.Builder
	for row := b.MinRow; row <= b.MaxRow; row++ {
		for col := b.MinCol; col <= b.MaxCol; col++ {
			ch, ok := p.Grid.Get(row, col)
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
