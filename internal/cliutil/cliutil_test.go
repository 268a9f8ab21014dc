// internal/cliutil/cliutil_test.go
package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.Bool("quiet", false, "")
	fs.String("indir", "", "")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{
		"--indir", "tree", "--quiet", "a.model", "--", "b.model",
	})
	if !reflect.DeepEqual(flagArgs, []string{"--indir", "tree", "--quiet"}) {
		t.Errorf("flagArgs = %v", flagArgs)
	}
	if !reflect.DeepEqual(posArgs, []string{"a.model", "b.model"}) {
		t.Errorf("posArgs = %v", posArgs)
	}
}

func TestExpandPositionalsGlob(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"hmmbuild.model.0", "hmmbuild.model.1"} {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ExpandPositionals([]string{filepath.Join(dir, "hmmbuild.model.*")})
	if err != nil {
		t.Fatalf("ExpandPositionals: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expanded = %v, want 2 paths", got)
	}
}

func TestExpandPositionalsNoMatch(t *testing.T) {
	if _, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "none.*")}); err == nil {
		t.Fatal("expected error for glob with no matches")
	}
}
