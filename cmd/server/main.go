package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/marketplace_vendor/config"
	"github.com/Gunvolt24/marketplace_vendor/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	if err := a.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, "service run failed: %v", err)
	}
}
