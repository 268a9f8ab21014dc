// core/scores/scores.go

// Package scores collects per-query bit-scores from the search-result
// shards of cataloged models and ranks them best-first.
package scores

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"hmmassign-core/catalog"
	"hmmassign-core/observe"
	"hmmassign-core/scorefile"
)

// Match is one query's score against one model.
type Match struct {
	Query          string
	AlignmentIndex int
	HMMIndex       int
	BitScore       float64
}

// Ranked maps each query to its matches sorted by bit-score descending.
type Ranked map[string][]Match

// CollectModel parses every result shard under one model's directory and
// returns the matches it contributes. Zero shards is not an error: the
// model simply contributes nothing. A malformed shard is fatal.
func CollectModel(e catalog.Entry) ([]Match, error) {
	shards, err := resultShards(e.Dir)
	if err != nil {
		return nil, err
	}
	var out []Match
	for _, path := range shards {
		byQuery, err := scorefile.Parse(path)
		if err != nil {
			return nil, err
		}
		// Map order is randomized; emit queries in sorted order so a
		// shard always contributes matches deterministically.
		queries := make([]string, 0, len(byQuery))
		for q := range byQuery {
			queries = append(queries, q)
		}
		sort.Strings(queries)
		for _, q := range queries {
			out = append(out, Match{
				Query:          q,
				AlignmentIndex: e.AlignmentIndex,
				HMMIndex:       e.HMMIndex,
				BitScore:       byQuery[q],
			})
		}
	}
	return out, nil
}

// Collect runs CollectModel over the whole catalog in order and ranks the
// merged result.
func Collect(c *catalog.Catalog, obs observe.Observer) (Ranked, error) {
	if obs == nil {
		obs = observe.Nop{}
	}
	obs.Logf("collecting search results for %d models", c.Len())
	start := time.Now()

	perModel := make([][]Match, c.Len())
	for i, e := range c.Entries {
		ms, err := CollectModel(e)
		if err != nil {
			return nil, err
		}
		perModel[i] = ms
	}

	ranked := MergeRanked(perModel)
	obs.Logf("done collecting search results: %d queries scored", len(ranked))
	obs.Timing("collect and rank search results", time.Since(start))
	return ranked, nil
}

// MergeRanked concatenates per-model match slices in slice order and sorts
// each query's list. Concatenation before sorting keeps the merge free of
// shared mutable state, so callers may fill perModel from parallel workers.
func MergeRanked(perModel [][]Match) Ranked {
	out := make(Ranked)
	for _, ms := range perModel {
		for _, m := range ms {
			out[m.Query] = append(out[m.Query], m)
		}
	}
	for q := range out {
		rank(out[q])
	}
	return out
}

// rank orders matches by bit-score descending. Equal scores are broken by
// (AlignmentIndex, HMMIndex) ascending rather than traversal order, so the
// ranking never depends on how the filesystem was enumerated.
func rank(ms []Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		a, b := ms[i], ms[j]
		if a.BitScore != b.BitScore {
			return a.BitScore > b.BitScore
		}
		if a.AlignmentIndex != b.AlignmentIndex {
			return a.AlignmentIndex < b.AlignmentIndex
		}
		return a.HMMIndex < b.HMMIndex
	})
}

// resultShards returns the search-result files under dir, sorted.
func resultShards(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && scorefile.IsResult(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching %s: %v", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
