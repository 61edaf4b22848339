package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/bmicalc/internal/render"
)

// Mode is what a Run does.
type Mode int

const (
	// ModeSingle evaluates one height/weight pair given on the command line.
	ModeSingle Mode = iota + 1
	// ModeBatch evaluates every measurement found in the input files.
	ModeBatch
	// ModeInteractive drives the form from lines read on the input stream.
	ModeInteractive
	// ModeCategories prints the classification table.
	ModeCategories
	// ModeServe runs the HTTP server until the context is cancelled.
	ModeServe
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeBatch:
		return "batch"
	case ModeInteractive:
		return "interactive"
	case ModeCategories:
		return "categories"
	case ModeServe:
		return "serve"
	default:
		return "unknown"
	}
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Raw inputs for ModeSingle. HasInput is set when either was supplied,
	// even as an empty string.
	Height   string
	Weight   string
	HasInput bool

	InputPaths     []string // hcl files or directories
	Interactive    bool
	ShowCategories bool

	Format    string
	LogFormat string
	LogLevel  string
	HTTPPort  int

	PublishURL       string
	PublishNamespace string
	PublishInsecure  bool

	mode Mode
}

// Mode returns the mode resolved by NewConfig.
func (c *Config) Mode() Mode {
	return c.mode
}

// NewConfig validates cfg, fills defaults and resolves the run mode. Exactly
// one mode must be selected.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if _, err := render.New(cfg.Format); err != nil {
		return nil, err
	}
	if cfg.HTTPPort < 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("http port %d is out of range", cfg.HTTPPort)
	}

	var modes []Mode
	if cfg.HasInput {
		modes = append(modes, ModeSingle)
	}
	if len(cfg.InputPaths) > 0 {
		modes = append(modes, ModeBatch)
	}
	if cfg.Interactive {
		modes = append(modes, ModeInteractive)
	}
	if cfg.ShowCategories {
		modes = append(modes, ModeCategories)
	}
	if cfg.HTTPPort > 0 {
		modes = append(modes, ModeServe)
	}

	switch len(modes) {
	case 0:
		return nil, errors.New("nothing to do: give a height and weight, an input file, -interactive, -categories or -http-port")
	case 1:
		cfg.mode = modes[0]
	default:
		names := make([]string, len(modes))
		for i, m := range modes {
			names[i] = m.String()
		}
		return nil, fmt.Errorf("conflicting modes selected: %s", strings.Join(names, ", "))
	}

	if cfg.mode == ModeInteractive && cfg.Format != "text" {
		return nil, fmt.Errorf("interactive mode only supports the text format")
	}
	if cfg.PublishInsecure && cfg.PublishURL == "" {
		return nil, errors.New("-publish-insecure requires -publish-url")
	}

	return &cfg, nil
}
