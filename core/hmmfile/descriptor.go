// core/hmmfile/descriptor.go
package hmmfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DescriptorPrefix is the fixed filename prefix of a profile-model
// descriptor file (hmmbuild.model.0, hmmbuild.model.7, ...).
const DescriptorPrefix = "hmmbuild.model."

// headerLines caps how much of a descriptor file is inspected. Everything
// the consumer needs lives in the leading key/value region.
const headerLines = 15

// Header holds the key/value pairs parsed from the leading lines of a
// model descriptor. Multi-token values are joined with commas.
type Header struct {
	Path   string
	Fields map[string]string
}

// IsDescriptor reports whether a filename looks like a model descriptor.
func IsDescriptor(name string) bool {
	return strings.HasPrefix(name, DescriptorPrefix) && len(name) > len(DescriptorPrefix)
}

// ReadHeader parses the header region of the descriptor at path.
// Each line is whitespace-tokenized as "KEY value..."; blank lines are
// skipped. Reading stops after headerLines lines or EOF.
func ReadHeader(path string) (Header, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer func() { _ = fh.Close() }()

	h := Header{Path: path, Fields: make(map[string]string, headerLines)}
	sc := bufio.NewScanner(fh)
	for ln := 0; ln < headerLines && sc.Scan(); ln++ {
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		h.Fields[f[0]] = strings.Join(f[1:], ",")
	}
	if err := sc.Err(); err != nil {
		return Header{}, fmt.Errorf("%s: %v", path, err)
	}
	return h, nil
}

// Int returns the value of key parsed as an integer. A missing key is an
// error: the descriptor is malformed, not merely incomplete.
func (h Header) Int(key string) (int, error) {
	v, ok := h.Fields[key]
	if !ok {
		return 0, fmt.Errorf("%s: %s not found in model descriptor", h.Path, key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: bad %s value %q", h.Path, key, v)
	}
	return n, nil
}

// TrainingSeqs returns the NSEQ field: the number of sequences the
// profile model was built from.
func (h Header) TrainingSeqs() (int, error) { return h.Int("NSEQ") }
