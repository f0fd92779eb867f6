// Package main implements the extract CLI, which pulls action items out of a
// file or stdin without running the HTTP service or touching storage.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
