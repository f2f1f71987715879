package main

import (
	"context"
	"flag"
	"log"
	"os"

	"PriceCast/internal/di"
	"PriceCast/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	serve := flag.Bool("serve", false, "run the HTTP server instead of a one-shot batch run")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s backend=%s model=%s v%d", cfg.Environment, cfg.Backend.Type, cfg.Model.Name, cfg.Model.Version)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	ctx := context.Background()
	if *serve {
		err = app.Serve(ctx)
	} else {
		err = app.RunOnce(ctx)
	}
	if err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
