package curate

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// CloudSource loads raw words and excluded words from a BigQuery table,
// mirroring the xwcli "-cloud" flag's LoadWordsFromCloud call in spirit:
// a scope selects the word table, obscure toggles a secondary table of
// rarer words that get merged into the same raw pool.
type CloudSource struct {
	ProjectID    string
	Dataset      string
	Scope        string
	Obscure      bool
	ClientOption option.ClientOption
}

// Load queries BigQuery for the word and excluded-word tables implied by
// Scope/Obscure and returns them in the shape Curate expects.
func (s CloudSource) Load(ctx context.Context) ([]string, map[string]struct{}, error) {
	var opts []option.ClientOption
	if s.ClientOption != nil {
		opts = append(opts, s.ClientOption)
	}

	client, err := bigquery.NewClient(ctx, s.ProjectID, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("curate: bigquery client: %w", err)
	}
	defer client.Close()

	raw, err := s.queryWords(ctx, client, s.wordsTable())
	if err != nil {
		return nil, nil, err
	}

	if s.Obscure {
		obscure, err := s.queryWords(ctx, client, s.obscureTable())
		if err != nil {
			return nil, nil, err
		}
		raw = append(raw, obscure...)
	}

	excludedWords, err := s.queryWords(ctx, client, s.excludedTable())
	if err != nil {
		return nil, nil, err
	}

	excluded := make(map[string]struct{}, len(excludedWords))
	for _, w := range excludedWords {
		excluded[normalizeWord(w)] = struct{}{}
	}

	return raw, excluded, nil
}

func (s CloudSource) wordsTable() string {
	return fmt.Sprintf("%s.%s.words_%s", s.ProjectID, s.Dataset, s.Scope)
}

func (s CloudSource) obscureTable() string {
	return fmt.Sprintf("%s.%s.words_obscure", s.ProjectID, s.Dataset)
}

func (s CloudSource) excludedTable() string {
	return fmt.Sprintf("%s.%s.words_excluded", s.ProjectID, s.Dataset)
}

func (s CloudSource) queryWords(ctx context.Context, client *bigquery.Client, table string) ([]string, error) {
	q := client.Query(fmt.Sprintf("SELECT word FROM `%s`", table))
	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("curate: querying %s: %w", table, err)
	}

	var out []string
	for {
		var row struct {
			Word string
		}
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("curate: reading %s: %w", table, err)
		}
		out = append(out, row.Word)
	}
	return out, nil
}
