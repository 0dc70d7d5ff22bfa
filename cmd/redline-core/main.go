// Command redline-core is the REDLINE source-to-source translator CLI
// (spec §6): redline-core <file.rl> [--json-ast | --gen <hpp|cpp>].
package main

import (
	"os"

	"github.com/redline-lang/redline-core/cmd/redline-core/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
