// core/assign/assign_test.go
package assign

import (
	"reflect"
	"testing"

	"hmmassign-core/scores"
)

func TestResolveTopMatchWins(t *testing.T) {
	ranked := scores.Ranked{
		"Q1": {
			{Query: "Q1", AlignmentIndex: 2, HMMIndex: 0, BitScore: 61.0},
			{Query: "Q1", AlignmentIndex: 1, HMMIndex: 0, BitScore: 55.2},
		},
		"Q2": {
			{Query: "Q2", AlignmentIndex: 1, HMMIndex: 0, BitScore: 40.0},
		},
	}

	got := Resolve(ranked, nil)
	want := Assignment{1: {"Q2"}, 2: {"Q1"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
	if got.Queries() != 2 {
		t.Errorf("Queries = %d, want 2", got.Queries())
	}
}

func TestResolveSkipsEmptyMatchLists(t *testing.T) {
	ranked := scores.Ranked{
		"Q1": {{Query: "Q1", AlignmentIndex: 3, BitScore: 1.0}},
		"Q2": {}, // defensive: should not occur, must not panic
	}
	got := Resolve(ranked, nil)
	if len(got) != 1 || len(got[3]) != 1 {
		t.Errorf("Resolve = %v, want only Q1 in partition 3", got)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	got := Resolve(scores.Ranked{}, nil)
	if len(got) != 0 {
		t.Errorf("Resolve(empty) = %v, want empty", got)
	}
}

func TestResolveBucketsAreSorted(t *testing.T) {
	ranked := scores.Ranked{
		"zeta":  {{Query: "zeta", AlignmentIndex: 1, BitScore: 1}},
		"alpha": {{Query: "alpha", AlignmentIndex: 1, BitScore: 2}},
		"mid":   {{Query: "mid", AlignmentIndex: 1, BitScore: 3}},
	}
	got := Resolve(ranked, nil)
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(got[1], want) {
		t.Errorf("bucket order = %v, want %v", got[1], want)
	}
}
