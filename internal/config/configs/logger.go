package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the structured logger (LOG_ prefix).
type Logger struct {
	// Level is debug, info, warn or error. slog offsets such as "info+2"
	// are accepted too; anything else means info.
	Level string `env:"LEVEL" envDefault:"info"`
	// Format is "text" or "json".
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

func (c Logger) SlogLevel() slog.Level {
	level := strings.ToLower(strings.TrimSpace(c.Level))
	switch level {
	case "warning":
		return slog.LevelWarn
	case "err":
		return slog.LevelError
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// SlogFormat returns "json" or "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// NewHandler builds the slog handler writing to w.
func (c Logger) NewHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
	if c.SlogFormat() == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
