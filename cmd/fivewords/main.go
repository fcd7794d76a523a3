// Package main is the entry point for the fivewords filter: it reduces
// words.txt to 5words.txt in the working directory.
package main

import (
	"os"

	"github.com/leeovery/fivewords/internal/cli"
)

func main() {
	dir := "."
	if wd, err := os.Getwd(); err == nil {
		dir = wd
	}

	os.Exit(cli.NewApp(os.Stdout, os.Stderr, dir).Filter())
}
