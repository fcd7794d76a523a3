// Package main is the entry point for wordsearch: it finds sets of five
// words in 5words.txt that share no letters and writes them to result.txt.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/leeovery/fivewords/internal/cli"
)

func main() {
	dir := "."
	if wd, err := os.Getwd(); err == nil {
		dir = wd
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.NewApp(os.Stdout, os.Stderr, dir).Search(ctx)
	stop()
	os.Exit(code)
}
