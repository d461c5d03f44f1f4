// Package main implements pdfcards, a command line tool that runs the
// flashcard pipeline on a local PDF file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
