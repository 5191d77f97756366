package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ewizz-console/internal/app"
	"ewizz-console/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional, env vars work too)")
	flag.Parse()

	a := app.New()
	if err := a.Initialize(*configPath); err != nil {
		logger.Error("init error: %v", err)
		os.Exit(1)
	}

	if err := a.Start(); err != nil {
		logger.Error("start error: %v", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.Stop(ctx); err != nil {
		logger.Error("stop error: %v", err)
	}
}
