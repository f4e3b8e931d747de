package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/iudanet/inkpress/internal/client/actions"
	"github.com/iudanet/inkpress/internal/client/api"
	"github.com/iudanet/inkpress/internal/client/cli"
	"github.com/iudanet/inkpress/internal/client/guard"
	"github.com/iudanet/inkpress/internal/client/iocli"
	"github.com/iudanet/inkpress/internal/client/state"
	"github.com/iudanet/inkpress/internal/config"
	"github.com/iudanet/inkpress/internal/logger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := config.Load()

	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.ServerURL, "Server URL")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	log := logger.New(*logLevel)

	// Состояние живёт в памяти процесса: один запуск — одна сессия
	store := state.New()
	gateway := api.NewClient(*serverURL, log)
	actionsSvc := actions.NewService(gateway, store, log)
	sessionGuard := guard.New(actionsSvc)

	shell := cli.New(actionsSvc, store, sessionGuard, iocli.NewStdio())
	if err := shell.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Inkpress Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
