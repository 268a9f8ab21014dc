// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"hmmassign-core/assign"
	"hmmassign/internal/jsonutil"
)

// WriteJSON writes a single JSON array of v1 partitions (pretty-indented).
func WriteJSON(w io.Writer, a assign.Assignment) error {
	return jsonutil.EncodePretty(w, ToAPIPartitions(a))
}

// WriteJSONL writes one v1 partition per line.
func WriteJSONL(w io.Writer, a assign.Assignment) error {
	enc := json.NewEncoder(w)
	for _, p := range ToAPIPartitions(a) {
		if err := enc.Encode(p); err != nil {
			return err
		}
	}
	return nil
}
