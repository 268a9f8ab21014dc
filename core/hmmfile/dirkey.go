// core/hmmfile/dirkey.go
package hmmfile

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ParseDirKey extracts the alignment and model indices encoded in a
// descriptor's containing directory name. The basename follows
// "<prefix>_<alignmentIndex>_<hmmIndex>"; the indices are always the last
// two underscore-delimited tokens, the prefix may itself contain
// underscores. This is the only place the key-in-path convention lives.
func ParseDirKey(dir string) (alignmentIndex, hmmIndex int, err error) {
	base := filepath.Base(dir)
	tok := strings.Split(base, "_")
	if len(tok) < 3 {
		return 0, 0, fmt.Errorf("%s: directory name does not encode alignment/model indices", dir)
	}
	alignmentIndex, err = strconv.Atoi(tok[len(tok)-2])
	if err != nil {
		return 0, 0, fmt.Errorf("%s: bad alignment index %q", dir, tok[len(tok)-2])
	}
	hmmIndex, err = strconv.Atoi(tok[len(tok)-1])
	if err != nil {
		return 0, 0, fmt.Errorf("%s: bad model index %q", dir, tok[len(tok)-1])
	}
	return alignmentIndex, hmmIndex, nil
}
