// Command untappd searches the Untappd API from the terminal.
//
//	untappd search breweries stone
//	untappd search beers "pale ale" --sort count --offset 25
//	untappd --dry-run search beers ipa
//
// Settings come from untappd.yml, .env files and UNTAPPD_* variables; see
// package config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "untappd:", err)
		os.Exit(1)
	}
}
