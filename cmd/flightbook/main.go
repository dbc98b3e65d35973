package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"flightbook/config"
	"flightbook/internal/bootstrap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("flightbook: %v", err)
	}
}
