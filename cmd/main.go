package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"fruitful/internal/platform"
	"fruitful/internal/storage"
	"fruitful/internal/ui/preferences"

	"github.com/spf13/cobra"
)

const appName = "Fruitful"

type options struct {
	terminal bool
	logLevel string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "fruitful",
		Short:        "Pomodoro focus timer",
		Long:         "Fruitful cycles through 25 minute focus intervals and short breaks, with a long break after every fourth focus.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().BoolVar(&opts.terminal, "tui", false, "run in the terminal instead of a window")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
	return cmd
}

func run(opts options) error {
	settings, loadErr := storage.LoadSettings(appName)
	if opts.logLevel != "" {
		settings.LogLevel = opts.logLevel
	}

	logger, closeLog, err := newLogger(opts, settings)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	if loadErr != nil {
		logger.Warn("using default settings", "error", loadErr)
	}

	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		logger.Error("single instance", "error", err)
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	if opts.terminal {
		return runTerminal(settings, logger)
	}
	return runDesktop(settings, logger)
}

// newLogger writes to stderr for the desktop face and to a file for the
// terminal face, whose screen owns stderr.
func newLogger(opts options, settings preferences.Settings) (*slog.Logger, func(), error) {
	var (
		out      io.Writer = os.Stderr
		closeLog           = func() {}
	)

	if opts.terminal {
		logPath, err := storage.LogPath(appName)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = file
		closeLog = func() {
			_ = file.Close()
		}
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: settings.SlogLevel()})
	return slog.New(handler), closeLog, nil
}
