package enumerate

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/operator-framework/backtrack/pkg/backtrack"
	"github.com/operator-framework/backtrack/pkg/backtrack/engine"
)

const (
	flagLimit     = "limit"
	flagStats     = "stats"
	flagVerbosity = "verbosity"
	flagStrings   = "strings"
	flagDup       = "dup"
)

// AddFlags registers the flags shared by every enumeration command.
func AddFlags(fs *pflag.FlagSet) {
	fs.Int(flagLimit, 0, "stop after this many results (0 lists all)")
	fs.Bool(flagStats, false, "print accepted and pruned counts to stderr")
	fs.IntP(flagVerbosity, "v", 0, "trace verbosity: 1 logs accepted paths, 2 also logs pruned branches")
}

// run carries the engine options and output streams of one command
// invocation.
type run struct {
	out     io.Writer
	errOut  io.Writer
	options []engine.Option
	stats   *engine.CountingTracer
}

func newRun(cmd *cobra.Command) (*run, error) {
	flags := cmd.Flags()
	limit, err := flags.GetInt(flagLimit)
	if err != nil {
		return nil, err
	}
	withStats, err := flags.GetBool(flagStats)
	if err != nil {
		return nil, err
	}
	verbosity, err := flags.GetInt(flagVerbosity)
	if err != nil {
		return nil, err
	}

	r := &run{
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
	var tracers []backtrack.Tracer
	if withStats {
		r.stats = &engine.CountingTracer{}
		tracers = append(tracers, r.stats)
	}
	if verbosity > 0 {
		logger := funcr.New(func(prefix, args string) {
			fmt.Fprintln(r.errOut, prefix, args)
		}, funcr.Options{Verbosity: verbosity})
		tracers = append(tracers, engine.LoggingTracer{Logger: logger.WithName(cmd.Name())})
	}
	if len(tracers) > 0 {
		r.options = append(r.options, engine.WithTracer(engine.Tracers(tracers...)))
	}
	r.options = append(r.options, engine.WithLimit(limit))
	return r, nil
}

func (r *run) finish(results int) {
	if r.stats == nil {
		return
	}
	fmt.Fprintf(r.errOut, "results=%d accepted=%d pruned=%d\n",
		results, r.stats.Count(backtrack.Accepted), r.stats.Count(backtrack.Pruned))
}

func printPaths[T any](r *run, paths [][]T) {
	for _, p := range paths {
		fmt.Fprintln(r.out, p)
	}
	r.finish(len(paths))
}

func printLines(r *run, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(r.out, l)
	}
	r.finish(len(lines))
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: not an integer (use --%s for string pools)", a, flagStrings)
		}
		values[i] = v
	}
	return values, nil
}
