package curate

import (
	"bufio"
	"context"
	"os"
)

// RawWordSource supplies the raw candidate words and excluded-word set a
// curation run consumes. The default implementation reads two newline-
// delimited files; pkg/curate/cloud.go provides a BigQuery-backed
// alternative behind the same interface.
type RawWordSource interface {
	Load(ctx context.Context) (raw []string, excluded map[string]struct{}, err error)
}

// FileSource loads raw words and excluded words from newline-delimited
// text files, matching spec.md's "filenames are parameters to the caller."
type FileSource struct {
	RawPath      string
	ExcludedPath string
}

// Load reads RawPath and, if set, ExcludedPath.
func (s FileSource) Load(ctx context.Context) ([]string, map[string]struct{}, error) {
	raw, err := readLines(s.RawPath)
	if err != nil {
		return nil, nil, err
	}

	excluded := make(map[string]struct{})
	if s.ExcludedPath != "" {
		lines, err := readLines(s.ExcludedPath)
		if err != nil {
			return nil, nil, err
		}
		for _, l := range lines {
			excluded[normalizeWord(l)] = struct{}{}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	return raw, excluded, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out, scanner.Err()
}
