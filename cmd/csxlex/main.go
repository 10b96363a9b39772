// Command csxlex is a small CLI for exercising the lexer: tokenizing a
// single file, inline text, or an entire source tree.
package main

import (
	"fmt"
	"os"

	"github.com/cslang/csxlex/cmd/csxlex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
