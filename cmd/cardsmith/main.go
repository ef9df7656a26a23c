// Package main provides the CLI entrypoint for cardsmith.
//
// cardsmith maintains a JSON card database:
//   - convert turns pilot files into partitioned, deduplicated card files
//   - move takes every card of one type into another card file
//   - dedupe renames cards that share an id
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cardsmith/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
