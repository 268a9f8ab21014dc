// pkg/api/assignment_v1.go
package api

// PartitionV1 is the stable JSON/JSONL schema for one alignment
// partition's assigned queries. Keep fields, names, and types stable.
// Add new fields only with ",omitempty".
type PartitionV1 struct {
	AlignmentIndex int      `json:"alignment_index"`
	Queries        []string `json:"queries"`
}
