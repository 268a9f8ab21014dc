// core/alnfile/count_test.go
package alnfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeAln(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SubsetName)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestRecords(t *testing.T) {
	cases := []struct {
		name string
		data string
		want int
	}{
		{"empty", "", 0},
		{"two records", ">a\nACGT\n>b\nACGA\n", 2},
		{"no trailing newline", ">a\nACGT\n>b\nACGA", 2},
		{"odd line count truncates", ">a\nACGT\n>b\n", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Records(writeAln(t, c.data))
			if err != nil {
				t.Fatalf("Records: %v", err)
			}
			if got != c.want {
				t.Errorf("Records = %d, want %d", got, c.want)
			}
		})
	}
}

func TestRecordsMissingFile(t *testing.T) {
	if _, err := Records(filepath.Join(t.TempDir(), "nope.fasta")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
