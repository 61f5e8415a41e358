// Command emberc is the CLI front end for the semantic checker: it
// loads a JSON-encoded AST and type-checks it, or runs a built-in
// smoke gallery, then exits 0 on success, 1 on a reported error, or
// the diagnostic's numeric code on a fatal.
package main

import (
	"fmt"
	"os"

	"github.com/emberlang/emberc/cmd/emberc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
