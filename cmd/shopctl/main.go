package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/sultanm/shopfront/internal/cli"
	"github.com/sultanm/shopfront/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		logg := logger.New(logger.Options{ServiceName: "shopctl"})
		logg.Debug(ctx, ".env file not found, relying on environment")
	}

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
