// Package cmd implements the redline-core command tree: a root command
// carrying the default code-generation behavior plus --json-ast (spec §6),
// and the lex/parse debug subcommands grounded on go-dws's
// cmd/dwscript/cmd/{lex,parse}.go.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	jsonAST bool
	genMode string
)

var rootCmd = &cobra.Command{
	Use:   "redline-core <file.rl>",
	Short: "REDLINE source-to-source translator",
	Long: `redline-core compiles a REDLINE source file through lexing, parsing, and
code generation, producing equivalent C++-family output (or a structured
dump of the AST for tooling).`,
	Version:           Version,
	Args:              cobra.ExactArgs(1),
	RunE:              runRoot,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
}

func init() {
	rootCmd.Flags().BoolVar(&jsonAST, "json-ast", false, "emit the parsed AST as structured JSON instead of generating code")
	rootCmd.Flags().StringVar(&genMode, "gen", "cpp", "code generation mode: hpp or cpp")
}

// Execute runs the root command and returns the error cobra surfaced, if
// any; main.go maps a non-nil error to exit code 1 per spec §6.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if jsonAST && cmd.Flags().Changed("gen") {
		return fmt.Errorf("exactly one of --json-ast or --gen may be supplied")
	}

	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	module := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if jsonAST {
		return runJSONAST(string(source))
	}
	return runGen(string(source), module, genMode)
}
