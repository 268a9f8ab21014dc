// core/alnfile/count.go
package alnfile

import (
	"io"
	"os"
)

// SubsetName is the fixed filename of the subset alignment that sits one
// directory level above each model's directory.
const SubsetName = "subset.aln.fasta"

// Records returns the number of sequence records in an alignment file that
// stores two lines per record (header + sequence). Only the line count
// matters; sequence content is never inspected.
func Records(path string) (int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = fh.Close() }()

	lines, err := countLines(fh)
	if err != nil {
		return 0, err
	}
	return lines / 2, nil
}

// countLines counts newline-terminated lines; a trailing partial line
// counts as one.
func countLines(r io.Reader) (int, error) {
	buf := make([]byte, 64<<10)
	n := 0
	lastByte := byte('\n')
	for {
		c, err := r.Read(buf)
		for _, b := range buf[:c] {
			if b == '\n' {
				n++
			}
		}
		if c > 0 {
			lastByte = buf[c-1]
		}
		if err == io.EOF {
			if lastByte != '\n' {
				n++
			}
			return n, nil
		}
		if err != nil {
			return 0, err
		}
	}
}
