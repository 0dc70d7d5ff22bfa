package cmd

import (
	"fmt"
	"os"

	"github.com/redline-lang/redline-core/ast"
	"github.com/redline-lang/redline-core/parser"
	"github.com/spf13/cobra"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file.rl]",
	Short: "Parse a REDLINE file and print its AST",
	Long: `Parse REDLINE source code and print its Abstract Syntax Tree.

By default, prints the alecthomas/repr structural dump. With --dump-ast,
prints the coarser human-readable indented dump instead.

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "use the coarse indented dump instead of the repr dump")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readLexParseInput(args)
	if err != nil {
		return err
	}

	prog, parseErr := parser.ParseString(source)
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, parseErr)
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		fmt.Println(ast.Dump(prog))
	} else {
		fmt.Println(ast.Repr(prog))
	}
	return nil
}
