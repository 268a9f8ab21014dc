// internal/output/common.go
package output

import (
	"fmt"
	"io"

	"hmmassign-core/assign"
)

// Write dispatches on the output format. Formats are validated at CLI
// parse time; an unknown format here is a programming error surfaced as a
// plain error rather than a panic.
func Write(format string, w io.Writer, a assign.Assignment, header bool) error {
	switch format {
	case "text":
		return WriteText(w, a)
	case "tsv":
		return WriteTSV(w, a, header)
	case "json":
		return WriteJSON(w, a)
	case "jsonl":
		return WriteJSONL(w, a)
	}
	return fmt.Errorf("unknown output format %q", format)
}
