// core/assign/assign.go

// Package assign resolves ranked per-query scores into a final
// query-to-subalignment assignment.
package assign

import (
	"sort"
	"time"

	"hmmassign-core/observe"
	"hmmassign-core/scores"
)

// Assignment maps an alignment partition index to the queries assigned
// to it. Each scored query appears in exactly one bucket.
type Assignment map[int][]string

// Queries returns the total number of assigned queries.
func (a Assignment) Queries() int {
	n := 0
	for _, qs := range a {
		n += len(qs)
	}
	return n
}

// Resolve assigns every query with at least one ranked match to the
// partition of its top match. Queries are visited in sorted order so the
// bucket contents are reproducible run to run. A query with an empty match
// list is skipped, never an error.
func Resolve(ranked scores.Ranked, obs observe.Observer) Assignment {
	if obs == nil {
		obs = observe.Nop{}
	}
	obs.Logf("assigning %d queries to target sub-alignments", len(ranked))
	start := time.Now()

	queries := make([]string, 0, len(ranked))
	for q := range ranked {
		queries = append(queries, q)
	}
	sort.Strings(queries)

	out := make(Assignment)
	for _, q := range queries {
		ms := ranked[q]
		if len(ms) == 0 {
			continue
		}
		top := ms[0]
		out[top.AlignmentIndex] = append(out[top.AlignmentIndex], q)
	}

	obs.Logf("done assigning queries: %d partitions used", len(out))
	obs.Timing("assign queries", time.Since(start))
	return out
}
