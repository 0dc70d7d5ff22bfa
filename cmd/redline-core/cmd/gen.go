package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/redline-lang/redline-core/codegen"
	"github.com/redline-lang/redline-core/parser"
)

func runJSONAST(source string) error {
	prog, err := parser.ParseString(source)
	if err != nil {
		return err
	}
	out, err := json.Marshal(prog)
	if err != nil {
		return fmt.Errorf("marshaling AST: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runGen(source, module, mode string) error {
	prog, err := parser.ParseString(source)
	if err != nil {
		return err
	}

	var header bool
	switch mode {
	case "hpp":
		header = true
	case "cpp":
		header = false
	default:
		return fmt.Errorf("unknown --gen mode %q, want hpp or cpp", mode)
	}

	out, err := codegen.Generate(prog, module, header)
	if err != nil {
		return fmt.Errorf("code generation: %w", err)
	}
	fmt.Print(out)
	_ = os.Stdout.Sync()
	return nil
}
