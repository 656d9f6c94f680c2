// Command shift is the Shift front-end compiler's CLI: tokenize,
// parse, and semantically analyze Shift source files.
package main

import (
	"fmt"
	"os"

	"github.com/ark1409/shiftc/cmd/shift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
