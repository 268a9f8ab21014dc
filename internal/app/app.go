// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"hmmassign-core/assign"
	"hmmassign-core/catalog"
	"hmmassign-core/observe"
	"hmmassign/internal/cli"
	"hmmassign/internal/cmdutil"
	"hmmassign/internal/output"
	"hmmassign/internal/pipeline"
	"hmmassign/internal/runutil"
	"hmmassign/internal/version"
	"hmmassign/internal/writers"
)

// RunContext executes the full assignment pipeline: catalog the models in
// range, collect and rank search results, resolve assignments, write them
// out. Exit codes: 0 ok, 2 usage or malformed artifacts, 3 write failure,
// 130 canceled, --no-assign-exit-code when nothing was assigned.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("hmmassign")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "hmmassign version %s\n", version.Version)
		return 0
	}

	var obs observe.Observer = observe.Nop{}
	if !opts.Quiet {
		obs = observe.Writer{W: stderr}
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	cat, err := catalog.Build(catalog.Config{
		Root:     opts.InDir,
		Lower:    opts.Lower,
		Upper:    opts.Upper,
		Paths:    opts.ModelPaths,
		Observer: obs,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if cat.Len() == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no model descriptors cataloged under %s", opts.InDir)
	}

	ranked, err := pipeline.CollectScores(ctx,
		pipeline.Config{Threads: runutil.EffectiveThreads(opts.Threads)}, cat, obs)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	qa := assign.Resolve(ranked, obs)

	if err := output.Write(opts.Output, outw, qa, opts.Header); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if qa.Queries() == 0 {
		return opts.NoAssignExitCode
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
