// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"hmmassign/internal/cliutil"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	InDir      string   // artifact tree root
	ModelPaths []string // pre-enumerated descriptor paths (skip discovery)

	// Filter
	Lower int
	Upper int

	// Performance
	Threads int

	// Output
	Output string // text | tsv | json | jsonl
	Header bool   // true unless --no-header (tsv only)

	// Misc
	Quiet            bool
	NoAssignExitCode int
	Version          bool
}

// sliceValue appends each value to a *[]string (for --model).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are treated as additional descriptor paths and may
// contain globs.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.InDir, "indir", "", "artifact tree root to search for model descriptors [*]")
	fs.StringVar(&opt.InDir, "i", "", "alias of --indir")
	models := &sliceValue{dst: &opt.ModelPaths}
	fs.Var(models, "model", "descriptor file (repeatable; skips discovery)")

	// Filter
	fs.IntVar(&opt.Lower, "lower", 0, "lower bound (inclusive) on training sequence count [*]")
	fs.IntVar(&opt.Upper, "upper", 0, "upper bound (inclusive) on training sequence count [*]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | tsv | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in tsv [false]")
	fs.IntVar(&opt.NoAssignExitCode, "no-assign-exit-code", 1, "exit code when no query was assigned [1]")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress and timing output [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.ModelPaths = append(opt.ModelPaths, exp...)
	}

	return opt, validate(&opt)
}

func validate(o *Options) error {
	if o.InDir == "" && len(o.ModelPaths) == 0 {
		return errors.New("provide --indir or at least one --model path")
	}
	if o.Lower < 0 {
		return errors.New("--lower must be ≥ 0")
	}
	if o.Upper < 1 {
		return errors.New("--upper is required and must be ≥ 1")
	}
	if o.Lower > o.Upper {
		return fmt.Errorf("--lower (%d) exceeds --upper (%d)", o.Lower, o.Upper)
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch o.Output {
	case "text", "tsv", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	return nil
}
