package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"loxwalk/internal/ast"
	"loxwalk/internal/cfg"
	"loxwalk/internal/cfgexport"
	"loxwalk/internal/diag"
	"loxwalk/internal/eval"
	"loxwalk/internal/nativefn"
	"loxwalk/internal/parser"
	"loxwalk/internal/report"
	"loxwalk/internal/runtime"
	"loxwalk/internal/source"
	"loxwalk/internal/trace"
)

var runCmd = &cobra.Command{
	Use:   "run <path> [path...]",
	Short: "Parse and evaluate one or more source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExecution,
}

func init() {
	runCmd.Flags().String("dump-cfg", "", "build the control-flow graph and msgpack-encode it to this path")
}

// runExecution loads every path given, parses each into a shared AST, and
// evaluates them in argument order against one runtime. Loading is the
// only step parallelized (golang.org/x/sync/errgroup): it is pure I/O,
// outside the single-writer evaluator the spec's concurrency model
// restricts to one goroutine (spec.md §5).
func runExecution(cmd *cobra.Command, args []string) error {
	tracer := trace.FromContext(cmd.Context())
	defer tracer.Close()

	fs := source.NewFileSet()
	fids := make([]source.FileID, len(args))

	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			content, err := os.ReadFile(path) // #nosec G304 -- path is a CLI argument
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fids[i] = fs.Add(path, content, false)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	bag := diag.NewBag(256)
	reporter := diag.BagReporter{Bag: bag}
	sink := report.NewSink(bag)

	b := ast.NewBuilder(ast.Hints{}, nil)
	var allStmts []ast.StmtID
	for _, fid := range fids {
		file := fs.Get(fid)
		prog := parser.ParseFile(file, b, parser.Options{Reporter: reporter, Tracer: tracer})
		allStmts = append(allStmts, prog.Stmts...)
	}

	if sink.HasErrors() {
		sink.Render(os.Stdout, fs)
		return fmt.Errorf("parsing failed with %d diagnostic(s)", sink.Len())
	}

	if dumpPath, _ := cmd.Flags().GetString("dump-cfg"); dumpPath != "" {
		if err := dumpCFG(allStmts, b, dumpPath); err != nil {
			return err
		}
	}

	cfgVal, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rt := runtime.New(tracer)
	nativefn.Register(rt, nativefn.Options{Stdout: os.Stdout, Allow: cfgVal.NativeAllowlist()})

	runErr := eval.Eval(allStmts, b, rt, eval.Options{
		Reporter: reporter,
		Tracer:   tracer,
		Stdout:   os.Stdout,
	})

	if sink.Len() > 0 {
		sink.Render(os.Stdout, fs)
	}
	if runErr != nil {
		return runErr
	}
	return nil
}

// dumpCFG builds the control-flow graph over stmts and msgpack-encodes
// it to path, the minimal contract the out-of-scope graphviz exporter
// consumes (spec.md §6.1).
func dumpCFG(stmts []ast.StmtID, b *ast.Builder, path string) error {
	graph := cfg.Build(stmts, b)

	f, err := os.Create(path) // #nosec G304 -- path is a CLI flag
	if err != nil {
		return fmt.Errorf("--dump-cfg: %w", err)
	}
	defer f.Close()

	if err := cfgexport.Encode(f, graph); err != nil {
		return fmt.Errorf("--dump-cfg: %w", err)
	}
	return nil
}
