// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"hmmassign-core/assign"
)

// WriteText prints one "alignmentIndex<TAB>queryID" line per assigned
// query, partitions in ascending order.
func WriteText(w io.Writer, a assign.Assignment) error {
	for _, p := range ToAPIPartitions(a) {
		for _, q := range p.Queries {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", p.AlignmentIndex, q); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteTSV is WriteText with an optional header line.
func WriteTSV(w io.Writer, a assign.Assignment, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "alignment_index\tquery_id"); err != nil {
			return err
		}
	}
	return WriteText(w, a)
}
