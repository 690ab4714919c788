// Package dictionary holds the word list a generation request draws from,
// and the linear scan that finds words formable from a letter bag.
package dictionary

import (
	"context"
	"sort"
	"strings"

	"crosswarped.com/xwgen/pkg/letters"
)

// Dictionary is an uppercase-normalized, deduplicated set of words.
type Dictionary struct {
	words []string
}

// New builds a Dictionary from raw words, normalizing case and dropping
// duplicates. Words keep the order of their first occurrence in the input.
func New(words []string) Dictionary {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		up := strings.ToUpper(strings.TrimSpace(w))
		if up == "" {
			continue
		}
		if _, ok := seen[up]; ok {
			continue
		}
		seen[up] = struct{}{}
		out = append(out, up)
	}
	return Dictionary{words: out}
}

// Len returns the number of distinct words in the dictionary.
func (d Dictionary) Len() int { return len(d.words) }

// Words returns the dictionary's words. The returned slice must not be
// mutated by callers.
func (d Dictionary) Words() []string { return d.words }

// FindValidWords returns every word in dict whose letters are a
// sub-multiset of letters and whose length is in [minLen, maxLen],
// sorted by length descending then alphabetically ascending.
func FindValidWords(ctx context.Context, letterBag string, dict Dictionary, minLen, maxLen int) ([]string, error) {
	bag := letters.From(letterBag)
	bagSet := bag.Set()

	var out []string
	for i, w := range dict.words {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if len(w) < minLen || len(w) > maxLen {
			continue
		}
		if !bagSet.SupersetOf(letters.SetFrom(w)) {
			continue
		}
		if !bag.Contains(letters.From(w)) {
			continue
		}
		out = append(out, w)
	}

	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})

	return out, nil
}
