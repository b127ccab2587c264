package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	pokelancecmd "github.com/FallenDeity/PokeLance/pkg/cmd/pokelance"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cmd := pokelancecmd.NewCommand(ctx, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
