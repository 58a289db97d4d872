package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/ksuid/internal/cli"
	"github.com/dmitrymomot/ksuid/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := cli.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer logger.Flush(2 * time.Second)

	if err := cli.NewRootCommand(cfg).ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
