package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chiton/gridgraph"
	"github.com/katalvlaran/chiton/solve"
)

// Config is the on-disk configuration. Every field can also be set by a flag
// of the same name (with dashes); flags win.
type Config struct {
	TileFactor int    `yaml:"tile_factor"`
	Start      string `yaml:"start"`
	End        string `yaml:"end"`
	Parts      string `yaml:"parts"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
}

// Part selectors accepted by --parts.
const (
	partsBase     = "base"
	partsExpanded = "expanded"
	partsBoth     = "both"
)

var errBadPoint = errors.New("point must be written as x,y")

func defaultConfig() Config {
	return Config{
		TileFactor: gridgraph.DefaultTileFactor,
		Parts:      partsBoth,
		LogLevel:   "warn",
		LogFormat:  "text",
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// solveConfig turns the textual settings into a solve.Config.
func (c Config) solveConfig(logger *slog.Logger) (solve.Config, error) {
	out := solve.Config{TileFactor: c.TileFactor, Logger: logger}
	switch strings.ToLower(c.Parts) {
	case partsBase:
		out.Base = true
	case partsExpanded:
		out.Expanded = true
	case partsBoth, "":
		out.Base, out.Expanded = true, true
	default:
		return out, fmt.Errorf("unknown parts %q (want %s, %s or %s)", c.Parts, partsBase, partsExpanded, partsBoth)
	}
	var err error
	if out.Start, err = parsePoint(c.Start); err != nil {
		return out, fmt.Errorf("start: %w", err)
	}
	if out.End, err = parsePoint(c.End); err != nil {
		return out, fmt.Errorf("end: %w", err)
	}

	return out, nil
}

// parsePoint reads "x,y". An empty string yields nil.
func parsePoint(s string) (*gridgraph.Point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	p := gridgraph.Pt(x, y)

	return &p, nil
}

// newLogger builds a slog.Logger writing to w in the configured format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
}
