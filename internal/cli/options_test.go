// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestIndirWithRangeOK(t *testing.T) {
	o := mustParse(t, "--indir", "tree", "--lower", "20", "--upper", "100")
	if o.InDir != "tree" || o.Lower != 20 || o.Upper != 100 {
		t.Errorf("bad parse %+v", o)
	}
	if o.Output != "text" || !o.Header {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestModelPathsRepeatable(t *testing.T) {
	o := mustParse(t,
		"--model", "a/hmmbuild.model.0",
		"--model", "b/hmmbuild.model.0",
		"--upper", "10",
	)
	if len(o.ModelPaths) != 2 {
		t.Errorf("ModelPaths = %v, want 2 entries", o.ModelPaths)
	}
}

func TestPositionalsBecomeModelPaths(t *testing.T) {
	o := mustParse(t, "--upper", "10", "a/hmmbuild.model.0", "b/hmmbuild.model.1")
	if len(o.ModelPaths) != 2 || o.ModelPaths[0] != "a/hmmbuild.model.0" {
		t.Errorf("ModelPaths = %v", o.ModelPaths)
	}
}

func TestErrorNoInput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--upper", "10"}); err == nil {
		t.Fatal("expected error when neither --indir nor --model given")
	}
}

func TestErrorMissingUpper(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--indir", "tree"}); err == nil {
		t.Fatal("expected error for missing --upper")
	}
}

func TestErrorInvertedRange(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--indir", "tree", "--lower", "50", "--upper", "10"})
	if err == nil {
		t.Fatal("expected error for lower > upper")
	}
}

func TestErrorBadOutput(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--indir", "t", "--upper", "10", "--output", "xml"})
	if err == nil {
		t.Fatal("expected error for invalid output format")
	}
}

func TestNoHeader(t *testing.T) {
	o := mustParse(t, "--indir", "t", "--upper", "10", "--output", "tsv", "--no-header")
	if o.Header {
		t.Error("Header should be false with --no-header")
	}
}

func TestVersionShortCircuitsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("version parse: %+v, %v", o, err)
	}
}

func TestHelpReturnsErrHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if err != flag.ErrHelp {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}
