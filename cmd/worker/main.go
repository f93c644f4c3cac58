package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"finsim/cmd"
	"finsim/internal/worker"
)

func main() {
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweeper := worker.NewMaturitySweeper(ctx, deps.ApiHandler.CommitmentService, deps.Logger)
	if err := sweeper.Register(deps.Secrets.WorkerCron); err != nil {
		deps.Logger.Fatal(err)
	}

	if os.Getenv("RUN_ON_START") == "true" {
		if _, err := sweeper.RunNow(); err != nil {
			deps.Logger.Errorf("initial sweep failed: %v", err)
		}
	}

	sweeper.Start()
	<-ctx.Done()
	sweeper.Stop()
}
