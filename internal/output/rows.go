// internal/output/rows.go
package output

import (
	"sort"

	"hmmassign-core/assign"
	"hmmassign/pkg/api"
)

// ToAPIPartitions converts an Assignment to the stable wire schema (v1),
// partitions sorted by alignment index ascending.
func ToAPIPartitions(a assign.Assignment) []api.PartitionV1 {
	out := make([]api.PartitionV1, 0, len(a))
	for idx, qs := range a {
		out = append(out, api.PartitionV1{
			AlignmentIndex: idx,
			Queries:        append([]string(nil), qs...),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AlignmentIndex < out[j].AlignmentIndex
	})
	return out
}
