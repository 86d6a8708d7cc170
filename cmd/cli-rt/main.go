// Where: cli-rt/cmd/cli-rt/main.go
// What: CLI entrypoint.
// Why: Scaffold a project with production dependencies.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cli-rt/cli-rt/internal/command"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := command.Run(ctx, os.Args[1:], buildDependencies())
	stop()
	os.Exit(code)
}
