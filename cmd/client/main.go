package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ItemKeeper/internal/cli/commands"
	"ItemKeeper/internal/config"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	// the terminal belongs to the ui, so logs go to a file
	logger, err := newFileLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file %s: %v\n", cfg.LogFile, err)
		logger = zap.NewNop()
	}
	defer logger.Sync()
	commands.Logger = logger.Sugar()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	_ = logger.Sync()
	os.Exit(exitCode)
}

func newFileLogger(path string) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}

func printVersion() {
	fmt.Printf("ItemKeeper CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
