// Package main is the entry point for the med editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/med/internal/app"
	"github.com/dshills/med/internal/config"
	"github.com/dshills/med/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes for signal-triggered shutdown, 128 + signal number.
var signalExitCodes = map[os.Signal]int{
	syscall.SIGHUP:  129,
	syscall.SIGINT:  130,
	syscall.SIGTERM: 143,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cliOptions holds parsed command line flags.
type cliOptions struct {
	file        string
	configPath  string
	overrides   map[string]any
	showVersion bool
	showHelp    bool
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 1
	}
	build := app.BuildInfo{Version: version, Commit: commit, Date: date}

	if opts.showHelp {
		return 0
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, build.String())
		return 0
	}

	cfgOpts := []config.Option{config.WithOverrides(opts.overrides)}
	if opts.configPath != "" {
		cfgOpts = append(cfgOpts, config.WithPath(opts.configPath))
	}
	cfg, err := config.Load(cfgOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: config: %v\n", err)
		return 1
	}

	logger, closeLog, err := app.OpenLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "Error: log: %v\n", err)
		return 1
	}
	defer closeLog()

	term := backend.NewTerminal(os.Stdin, os.Stdout,
		backend.WithEscapeTimeout(cfg.Editor.EscapeTimeout))

	application, err := app.New(app.Options{
		File:    opts.file,
		Config:  cfg,
		Backend: term,
		Logger:  logger,
		Build:   build,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Run blocks in a terminal read, so a signal restores the terminal and
	// exits from here rather than waiting for the loop.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	go func() {
		sig, ok := <-signals
		if !ok {
			return
		}
		cancel()
		term.Shutdown()
		logger.WithComponent("main").WithField("signal", sig.String()).Info("terminated by signal")
		_ = closeLog()
		os.Exit(signalExitCodes[sig])
	}()

	if err := application.Run(ctx); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	var logLevel, logFile string
	var lineNumbers bool

	fs := flag.NewFlagSet("med", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Append session logs to this file")
	fs.BoolVar(&lineNumbers, "line-numbers", true, "Show the line number gutter")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&opts.showHelp, "help", false, "Show help message")
	fs.BoolVar(&opts.showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "med - minimal terminal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: med [options] <file>\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  Ctrl+S  save\n")
		fmt.Fprintf(stderr, "  Ctrl+Q  quit without saving (also Ctrl+X)\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			opts.showHelp = true
			return opts, nil
		}
		return opts, err
	}

	if opts.showHelp {
		fs.Usage()
		return opts, nil
	}
	if opts.showVersion {
		return opts, nil
	}

	// Only flags given on the command line override lower layers.
	opts.overrides = make(map[string]any)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			opts.overrides["logging.level"] = logLevel
		case "log-file":
			opts.overrides["logging.file"] = logFile
		case "line-numbers":
			opts.overrides["editor.line_numbers"] = lineNumbers
		}
	})

	if fs.NArg() != 1 {
		fs.Usage()
		return opts, fmt.Errorf("expected exactly one file, got %d", fs.NArg())
	}
	opts.file = fs.Arg(0)
	return opts, nil
}
