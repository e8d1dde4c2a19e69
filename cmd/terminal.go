package main

import (
	"fmt"
	"log/slog"
	"os"

	"fruitful/internal/core/timekeeper"
	"fruitful/internal/ui/preferences"
	"fruitful/internal/ui/term"

	tea "github.com/charmbracelet/bubbletea"
)

func runTerminal(settings preferences.Settings, logger *slog.Logger) error {
	keeper := timekeeper.New(timekeeper.Config{Logger: logger})
	if settings.TerminalBell {
		keeper.SetNotifier(term.Bell{Out: os.Stderr})
	}

	events := keeper.Subscribe(sinkBuffer)
	keeper.Start()
	defer keeper.Stop()

	program := tea.NewProgram(term.New(keeper, events), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal face: %w", err)
	}
	logger.Debug("terminal face closed")
	return nil
}
