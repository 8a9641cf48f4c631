// Package main is the entry point for the shim editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/shim/internal/app"
	"github.com/dshills/shim/internal/config"
	"github.com/dshills/shim/internal/renderer/backend"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logFile     string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "path to configuration file")
	flag.StringVar(&logFile, "log", "", "path to log file (overrides config)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("shim %s\n", app.Version)
		return 0
	}

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	log, err := app.NewLogger(cfg.LogFile, app.LogLevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Close()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	editor, err := app.New(cfg, term, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if flag.NArg() > 0 {
		if err := editor.OpenFile(flag.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if err := editor.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
