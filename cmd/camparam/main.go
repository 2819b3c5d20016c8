// Command camparam opens a camera parameter session against a simulated
// device.
//
// The session is opened with the defaults of the selected capability
// profile. Commands passed with -exec run in order before the program
// exits; -interactive starts a shell that stays until quit or a signal.
//
// Usage:
//
//	camparam [flags]
//
// Flags:
//
//	-profile string       Built-in capability profile (default "default")
//	-profile-file string  YAML capability profile to load instead
//	-exec string          Commands to run, separated by ';'
//	-interactive          Enable interactive command mode
//	-event-log string     Write session events to a CBOR log file
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-log-format string    Console event format: slog, logrus, none (default "slog")
//	-denoise-plates int   Wavelet denoise planes (0-3)
//	-seed string          Flattened k=v;k=v state loaded before the defaults
//
// Examples:
//
//	# Print the default state of the minimal profile
//	camparam -profile minimal
//
//	# Change zoom and read the device slot back
//	camparam -exec "set zoom 3; apply; query ZOOM"
//
//	# Interactive session recording every decision
//	camparam -interactive -event-log session.cplog
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/camparam/camparam-go/cmd/camparam/interactive"
	"github.com/camparam/camparam-go/pkg/capability"
	"github.com/camparam/camparam-go/pkg/device"
	"github.com/camparam/camparam-go/pkg/log"
	"github.com/camparam/camparam-go/pkg/params"
)

// Config holds the command-line configuration.
type Config struct {
	Profile       string
	ProfileFile   string
	Exec          string
	Interactive   bool
	EventLog      string
	LogLevel      string
	LogFormat     string
	DenoisePlates int
	Seed          string
}

var config Config

func init() {
	flag.StringVar(&config.Profile, "profile", "default", "Built-in capability profile")
	flag.StringVar(&config.ProfileFile, "profile-file", "", "YAML capability profile to load instead of a built-in one")
	flag.StringVar(&config.Exec, "exec", "", "Commands to run, separated by ';'")
	flag.BoolVar(&config.Interactive, "interactive", false, "Enable interactive command mode")
	flag.StringVar(&config.EventLog, "event-log", "", "Write session events to a CBOR log file")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&config.LogFormat, "log-format", "slog", "Console event format: slog, logrus, none")
	flag.IntVar(&config.DenoisePlates, "denoise-plates", 0, "Wavelet denoise planes: 0 YCbCr, 1 CbCr, 2 streamline YCbCr, 3 streamlined CbCr")
	flag.StringVar(&config.Seed, "seed", "", "Flattened k=v;k=v state loaded before the defaults")
}

func main() {
	flag.Parse()

	if err := validateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(os.Stdout, os.Stderr))
}

// run opens the session and drives it. Deferred cleanup always runs before
// the exit code is returned.
func run(stdout, stderr io.Writer) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The shell is created first so log output can go through readline.
	var shell *interactive.Shell
	out := stdout
	logOut := stderr
	if config.Interactive {
		var err error
		shell, err = interactive.New()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to create interactive shell: %v\n", err)
			return 1
		}
		out = shell.Stdout()
		logOut = shell.Stdout()
	}

	logger := setupLogging(config.LogLevel, logOut)

	capab, err := loadCapability()
	if err != nil {
		logger.Error("failed to load capability", "error", err)
		return 1
	}

	events, closeEvents, err := setupEventLogging(logger, logOut)
	if err != nil {
		logger.Error("failed to open event log", "error", err)
		return 1
	}
	defer closeEvents()

	sim := device.NewSim(device.SimConfig{Name: capab.Name, Logger: logger})

	cfg := params.DefaultConfig()
	cfg.Logger = logger
	cfg.EventLogger = events
	cfg.DenoisePlates = config.DenoisePlates
	cfg.Seed = config.Seed

	p, err := params.New(ctx, capab, sim, cfg)
	if err != nil {
		logger.Error("failed to open parameters", "error", err)
		return 1
	}
	defer p.Close()

	if config.Exec != "" {
		runner := shell
		if runner == nil {
			runner = interactive.NewWithWriter(p, out)
		} else {
			runner.Attach(p)
		}
		for _, line := range strings.Split(config.Exec, ";") {
			if !runner.Exec(ctx, line) {
				return 0
			}
		}
	}

	if !config.Interactive {
		if config.Exec == "" {
			fmt.Fprintln(out, p.Flatten())
		}
		return 0
	}

	shell.Attach(p)
	go shell.Run(ctx, cancel)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig.String())
	case <-ctx.Done():
	}
	cancel()
	return 0
}

func setupLogging(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// setupEventLogging combines the optional event file with the console
// adapter selected by -log-format.
func setupEventLogging(logger *slog.Logger, w io.Writer) (log.Logger, func(), error) {
	var loggers []log.Logger
	closeFn := func() {}

	if config.EventLog != "" {
		fl, err := log.NewFileLogger(config.EventLog)
		if err != nil {
			return nil, nil, err
		}
		loggers = append(loggers, fl)
		closeFn = func() {
			if err := fl.Close(); err != nil {
				logger.Warn("failed to close event log", "error", err)
				return
			}
			logger.Info("event log written", "path", fl.Path(), "events", fl.Written())
		}
	}

	switch config.LogFormat {
	case "slog":
		loggers = append(loggers, log.NewSlogAdapter(logger))
	case "logrus":
		lr := logrus.New()
		lr.SetOutput(w)
		if lvl, err := logrus.ParseLevel(config.LogLevel); err == nil {
			lr.SetLevel(lvl)
		}
		loggers = append(loggers, log.NewLogrusAdapter(lr))
	}

	if len(loggers) == 0 {
		return log.NoopLogger{}, closeFn, nil
	}
	return log.NewMultiLogger(loggers...), closeFn, nil
}

func loadCapability() (*capability.Capability, error) {
	if config.ProfileFile != "" {
		return capability.LoadFile(config.ProfileFile)
	}
	return capability.Builtin(config.Profile)
}

func validateConfig() error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.LogLevel)
	}

	switch config.LogFormat {
	case "slog", "logrus", "none":
	default:
		return fmt.Errorf("invalid log format: %s (must be slog, logrus or none)", config.LogFormat)
	}

	if config.DenoisePlates < 0 || config.DenoisePlates > 3 {
		return fmt.Errorf("denoise plates must be between 0 and 3")
	}

	if config.ProfileFile == "" {
		names, err := capability.BuiltinNames()
		if err != nil {
			return err
		}
		if !slices.Contains(names, config.Profile) {
			return fmt.Errorf("unknown profile: %s (available: %s)", config.Profile, strings.Join(names, ", "))
		}
	}

	return nil
}
