// Package curate implements the offline wordlist curation pipeline:
// sub-word computation, fun-score percentiles, and anagram dedup, producing
// a self-describing CuratedWordlist.
package curate

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"crosswarped.com/xwgen/pkg/letters"
)

const (
	minWordLen = 3
	maxWordLen = 8
)

var subWordCountCap = map[int]float64{3: 3, 4: 12, 5: 30, 6: 50, 7: 80, 8: 100}

// WordRecord is a single curated word's precomputed data. Word is the map
// key in Wordlist.Words and is not part of its own JSON representation.
type WordRecord struct {
	Word         string   `json:"-"`
	SubWords     []string `json:"sub_words"`
	SubWordCount int      `json:"sub_word_count"`
	FunScore     float64  `json:"fun_score"`
}

// Metadata describes the provenance of a curated wordlist dump.
type Metadata struct {
	Version     string `json:"version"`
	GeneratedAt string `json:"generated_at"`
	MinSubWords int    `json:"min_sub_words"`
	Description string `json:"description"`
}

// Wordlist is the complete curated output: per-word records plus a
// by-length index sorted by fun score descending. It is the self-describing
// dump described by the curated wordlist file format.
type Wordlist struct {
	Metadata      Metadata              `json:"metadata"`
	WordsByLength map[int][]string      `json:"words_by_length"`
	Words         map[string]WordRecord `json:"words"`
}

// Dump marshals wl as indented JSON and writes it to path.
func (wl Wordlist) Dump(path string) error {
	data, err := json.MarshalIndent(wl, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DedupStats reports the outcome of the anagram-dedup pass.
type DedupStats struct {
	Original    int
	FilteredOut int
	Kept        int
}

// Options configures a curation run.
type Options struct {
	GeneratedAt string
	Logger      zerolog.Logger
}

// Curate runs the full pipeline over raw words, consulting excluded for
// both the candidate set and the sub-word search space, and returns the
// curated wordlist plus anagram-dedup stats.
func Curate(ctx context.Context, raw []string, excluded map[string]struct{}, opts Options) (Wordlist, DedupStats, error) {
	pool := normalizePool(raw, excluded)

	records := make(map[string]WordRecord, len(pool))
	for i, w := range pool {
		if i%2048 == 0 {
			if err := ctx.Err(); err != nil {
				return Wordlist{}, DedupStats{}, err
			}
		}
		if len(w) < minWordLen || len(w) > maxWordLen {
			continue
		}

		subWords := subWordsOf(w, pool)
		if len(subWords) < 3 {
			continue
		}

		records[w] = WordRecord{
			Word:         w,
			SubWords:     subWords,
			SubWordCount: len(subWords),
			FunScore:     rawFunScore(w, subWords),
		}
	}

	percentileRank(records)

	deduped, stats := dedupAnagrams(records)

	wl := Wordlist{
		Metadata: Metadata{
			Version:     "2.0",
			GeneratedAt: opts.GeneratedAt,
			MinSubWords: 3,
			Description: "curated wordscapes wordlist: sub-words, fun score, anagram-deduped",
		},
		WordsByLength: byLengthIndex(deduped),
		Words:         deduped,
	}

	opts.Logger.Info().
		Int("candidates", len(pool)).
		Int("kept", stats.Kept).
		Int("filtered_anagrams", stats.FilteredOut).
		Msg("curation complete")

	return wl, stats, nil
}

func normalizePool(raw []string, excluded map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		norm := normalizeWord(w)
		if norm == "" {
			continue
		}
		if _, skip := excluded[norm]; skip {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}

func normalizeWord(w string) string {
	up := make([]byte, 0, len(w))
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			continue
		}
		up = append(up, c)
	}
	return string(up)
}

// subWordsOf returns every word in pool (w itself included) that is a
// sub-multiset of w, length in [3, len(w)], sorted by length descending
// then alphabetically ascending.
func subWordsOf(w string, pool []string) []string {
	bag := letters.From(w)
	var out []string
	for _, s := range pool {
		if len(s) < minWordLen || len(s) > len(w) {
			continue
		}
		if bag.Contains(letters.From(s)) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// rawFunScore computes the weighted five-feature raw score in [0,1].
func rawFunScore(w string, subWords []string) float64 {
	diversity := letterDiversity(w)
	stdDev := subWordLengthStdDevScore(subWords)
	countBonus := subWordCountBonus(w, subWords)
	meaty := meatyRatio(subWords)
	longBonus := longWordBonus(subWords)

	return 0.20*diversity + 0.20*stdDev + 0.30*countBonus + 0.15*meaty + 0.15*longBonus
}

func letterDiversity(w string) float64 {
	set := letters.From(w)
	distinct := 0
	for c := byte('A'); c <= 'Z'; c++ {
		if set.Count(c) > 0 {
			distinct++
		}
	}
	return float64(distinct) / float64(len(w))
}

func subWordLengthStdDevScore(subWords []string) float64 {
	if len(subWords) == 0 {
		return 0
	}
	mean := 0.0
	for _, s := range subWords {
		mean += float64(len(s))
	}
	mean /= float64(len(subWords))

	variance := 0.0
	for _, s := range subWords {
		d := float64(len(s)) - mean
		variance += d * d
	}
	variance /= float64(len(subWords))
	stddev := math.Sqrt(variance)

	normalized := stddev / 2.5
	if normalized > 1 {
		normalized = 1
	}
	return normalized
}

func subWordCountBonus(w string, subWords []string) float64 {
	bonusCap, ok := subWordCountCap[len(w)]
	if !ok || bonusCap == 0 {
		return 0
	}
	ratio := float64(len(subWords)) / bonusCap
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

func meatyRatio(subWords []string) float64 {
	if len(subWords) == 0 {
		return 0
	}
	meaty := 0
	for _, s := range subWords {
		if len(s) >= 4 {
			meaty++
		}
	}
	return float64(meaty) / float64(len(subWords))
}

func longWordBonus(subWords []string) float64 {
	long := 0
	for _, s := range subWords {
		if len(s) >= 5 {
			long++
		}
	}
	ratio := float64(long) / 5
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

// percentileRank converts each record's raw fun score to a within-length
// percentile rank in place: sort ascending within each length bucket,
// assign i/(n-1) (0.5 for n==1), rounded to three decimals.
func percentileRank(records map[string]WordRecord) {
	buckets := make(map[int][]string)
	for w := range records {
		buckets[len(w)] = append(buckets[len(w)], w)
	}

	for _, words := range buckets {
		sort.Slice(words, func(i, j int) bool {
			ri, rj := records[words[i]], records[words[j]]
			if ri.FunScore != rj.FunScore {
				return ri.FunScore < rj.FunScore
			}
			return words[i] < words[j]
		})

		n := len(words)
		for i, w := range words {
			var pct float64
			if n == 1 {
				pct = 0.5
			} else {
				pct = float64(i) / float64(n-1)
			}
			rec := records[w]
			rec.FunScore = roundTo3(pct)
			records[w] = rec
		}
	}
}

func roundTo3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// dedupAnagrams groups records by anagram signature and keeps only the
// highest-fun-score word per group.
func dedupAnagrams(records map[string]WordRecord) (map[string]WordRecord, DedupStats) {
	groups := make(map[string][]string)
	for w := range records {
		sig := letters.Signature(w)
		groups[sig] = append(groups[sig], w)
	}

	kept := make(map[string]WordRecord, len(records))
	for _, words := range groups {
		best := words[0]
		for _, w := range words[1:] {
			bf, wf := records[best].FunScore, records[w].FunScore
			if wf > bf || (wf == bf && w < best) {
				best = w
			}
		}
		kept[best] = records[best]
	}

	return kept, DedupStats{
		Original:    len(records),
		FilteredOut: len(records) - len(kept),
		Kept:        len(kept),
	}
}

func byLengthIndex(records map[string]WordRecord) map[int][]string {
	buckets := make(map[int][]string)
	for w := range records {
		buckets[len(w)] = append(buckets[len(w)], w)
	}
	for length, words := range buckets {
		sort.Slice(words, func(i, j int) bool {
			ri, rj := records[words[i]], records[words[j]]
			if ri.FunScore != rj.FunScore {
				return ri.FunScore > rj.FunScore
			}
			return words[i] < words[j]
		})
		buckets[length] = words
	}
	return buckets
}
