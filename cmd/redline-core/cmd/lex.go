package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/redline-lang/redline-core/lexer"
	"github.com/redline-lang/redline-core/token"
	"github.com/spf13/cobra"
)

var (
	lexShowPos    bool
	lexShowType   bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file.rl]",
	Short: "Tokenize a REDLINE file and print the resulting tokens",
	Long: `Tokenize a REDLINE source file and print the resulting token stream,
including the INDENT/DEDENT tokens synthesized from its indentation.

If no file is given, reads from stdin.

Examples:
  redline-core lex script.rl
  redline-core lex --show-type --show-pos script.rl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "exit nonzero if lexing fails, suppressing normal output")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, err := readLexParseInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	for {
		tok, lexErr := l.NextToken()
		if lexErr != nil {
			return lexErr
		}
		if !lexOnlyErrors {
			printToken(tok)
		}
		if tok.Type == token.EOF {
			break
		}
	}
	return nil
}

func printToken(tok token.Token) {
	var output string
	if lexShowType {
		output = fmt.Sprintf("[%-8s]", tok.Type)
	}
	if tok.Literal == "" {
		output += fmt.Sprintf(" %s", tok.Type)
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		output += fmt.Sprintf(" @%d:%d", tok.Line, tok.Column)
	}
	fmt.Println(output)
}

func readLexParseInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
