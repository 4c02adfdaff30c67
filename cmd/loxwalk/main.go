// Command loxwalk is the CLI around the interpreter core: it loads
// source files (or reads a REPL line), drives internal/parser and
// internal/eval, and renders diagnostics through internal/report. The
// command-tree wiring (persistent flags, PersistentPreRunE attaching a
// tracer to the command context) follows cmd/surge/main.go's shape.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loxwalk/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "loxwalk",
	Short: "A tree-walking interpreter for a small Lox-like scripting language",
	Long: `loxwalk lexes, parses, and evaluates a small dynamically-typed
scripting language: variables, control flow, lexical scoping, and
first-class native functions.`,
}

func main() {
	rootCmd.Version = version.VersionString()
	rootCmd.PersistentPreRunE = attachTracer

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a loxwalk TOML config file")
	rootCmd.PersistentFlags().String("trace", "", "trace output path (- for stderr, empty disables tracing)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace output format (auto|text|ndjson|chrome)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "trace ring buffer capacity")
	rootCmd.PersistentFlags().Duration("trace-heartbeat", 0, "trace heartbeat interval (0 disables)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "loxwalk:", err)
		os.Exit(1)
	}
}
