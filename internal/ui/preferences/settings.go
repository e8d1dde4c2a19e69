package preferences

import (
	"log/slog"
	"strings"
)

const (
	MinWindowSize     = 240
	MaxWindowSize     = 720
	defaultWindowSize = 360
)

// LogLevels lists the accepted log level names.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Settings defines editable user preferences.
type Settings struct {
	Notifications bool
	TerminalBell  bool
	WindowSize    float64
	LogLevel      string
}

// DefaultSettings returns default settings for Fruitful.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		TerminalBell:  true,
		WindowSize:    defaultWindowSize,
		LogLevel:      "info",
	}
}

// SlogLevel converts LogLevel to a slog level. Unknown names map to info.
func (settings Settings) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(settings.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ClampWindowSize keeps a window size inside the supported range.
func ClampWindowSize(size float64) float64 {
	if size < MinWindowSize {
		return MinWindowSize
	}
	if size > MaxWindowSize {
		return MaxWindowSize
	}
	return size
}
