// Command chiton finds the lowest total-risk route through a cave map.
//
// Usage:
//
//	chiton solve input.txt
//	chiton solve --parts base --route input.txt
//	chiton solve --start 0,0 --end 9,9 --json < input.txt
//	chiton expand --tile-factor 5 input.txt > big.txt
//	chiton --config chiton.yaml solve input.txt
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
