// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
)

const (
	defaultPattern      = "vecstore-%Y-%m-%d.log"
	defaultRotationTime = "24h"
	defaultMaxAge       = "168h"
)

// Config describes log output. Path is optional; when empty, logs go to
// stderr only.
type Config struct {
	Level        string `yaml:"level"`
	Format       string `yaml:"format"` // text or json
	Path         string `yaml:"path"`
	Pattern      string `yaml:"pattern"`
	RotationTime string `yaml:"rotationTime"`
	MaxAge       string `yaml:"maxAge"`
}

// DefaultConfig returns warn-level text logging to stderr.
func DefaultConfig() Config {
	return Config{Level: "warn", Format: "text"}
}

// Validate checks level, format and, for file output, the rotation settings.
func (cfg *Config) Validate() error {
	if !contains([]string{"", "debug", "info", "warn", "error"}, strings.ToLower(cfg.Level)) {
		return errors.New("invalid level: " + cfg.Level)
	}
	if !contains([]string{"", "text", "json"}, strings.ToLower(cfg.Format)) {
		return errors.New("invalid format: " + cfg.Format)
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return nil
	}
	if _, err := time.ParseDuration(orDefault(cfg.RotationTime, defaultRotationTime)); err != nil {
		return errors.New("rotationTime is invalid: " + err.Error())
	}
	if _, err := time.ParseDuration(orDefault(cfg.MaxAge, defaultMaxAge)); err != nil {
		return errors.New("maxAge is invalid: " + err.Error())
	}
	return nil
}

// Init installs the default slog logger described by cfg.
func Init(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	out, err := writer(cfg)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(NewHandler(out, cfg)))
	return nil
}

// NewHandler builds a text or JSON handler writing to out.
func NewHandler(out io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: mapLevel(cfg.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				if t, ok := a.Value.Any().(time.Time); ok {
					return slog.String(a.Key, t.Format("2006-01-02 15:04:05.000000"))
				}
			}
			return a
		},
	}
	if strings.ToLower(cfg.Format) == "json" {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}

// Logger returns the default logger tagged with module.
func Logger(module string) *slog.Logger {
	return slog.Default().With("module", module)
}

func writer(cfg Config) (io.Writer, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return os.Stderr, nil
	}
	fileWriter, err := configureFileLogger(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to configure file logger")
	}
	return io.MultiWriter(os.Stderr, fileWriter), nil
}

func configureFileLogger(cfg Config) (io.Writer, error) {
	rotationTime, err := time.ParseDuration(orDefault(cfg.RotationTime, defaultRotationTime))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse rotationTime")
	}
	maxAge, err := time.ParseDuration(orDefault(cfg.MaxAge, defaultMaxAge))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse maxAge")
	}
	pattern := filepath.Join(cfg.Path, orDefault(cfg.Pattern, defaultPattern))
	return rotatelogs.New(
		pattern,
		rotatelogs.WithRotationTime(rotationTime),
		rotatelogs.WithMaxAge(maxAge),
	)
}

func mapLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func contains(slice []string, str string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}
