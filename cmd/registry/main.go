package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"contract-registry/internal/config"
	"contract-registry/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
)

func main() {
	if err := runMainProcess(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", userMessage(err))
		os.Exit(1)
	}
}

func runMainProcess(args []string, in io.Reader, out, errOut io.Writer) error {
	// A missing .env is fine; the environment still applies
	dotenvErr := loadDotenv()

	cfg := loadCfg()

	initLog(cfg.App.Env)
	defer logger.Sync()
	logger.Debug(context.Background(), "Logger initialized", zap.String("env", cfg.App.Env))
	if dotenvErr != nil {
		logger.Debug(context.Background(), "No .env file found, using environment variables")
	}

	cmd := NewRootCommand(cfg)
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd.Execute()
}
