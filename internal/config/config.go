// Package config loads the project-level .emberc.yaml file: diagnostic
// color mode, whether warnings escalate to errors, and a max-errors
// cutoff. Shaped after funxy.yaml's Config/yaml.v3 pattern in the
// retrieval pack (funvibe-funxy's internal/ext.Config) — a small,
// tag-annotated struct unmarshalled straight off disk.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the project config file emberc looks for in the
// current directory when no --config flag is given.
const DefaultFileName = ".emberc.yaml"

// Config is the top-level .emberc.yaml document.
type Config struct {
	// Color selects ANSI rendering for diagnostics: "auto" (default),
	// "always", or "never". NO_COLOR and --no-color both still win over
	// this when they ask for no color. The emberc commands do no
	// terminal detection, so under "auto" they render without color.
	Color string `yaml:"color,omitempty"`

	// EscalateWarnings treats every Warning-severity diagnostic as an
	// Error for the purposes of hasErrors(), without changing how it
	// renders.
	EscalateWarnings bool `yaml:"escalate_warnings,omitempty"`

	// MaxErrors stops emitting diagnostics (but keeps counting them)
	// once this many Error/Fatal diagnostics have been recorded. Zero
	// means unlimited.
	MaxErrors int `yaml:"max_errors,omitempty"`
}

// Default returns the configuration used when no .emberc.yaml is
// present: auto color, no escalation, unlimited errors.
func Default() Config {
	return Config{Color: "auto"}
}

// Load reads and parses the YAML config at path. A missing file is not
// an error: it returns Default() unchanged, since .emberc.yaml is
// optional project configuration, not a required manifest.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveColor decides whether ANSI sequences should be emitted, given
// the config's Color mode, the --no-color flag, and the NO_COLOR
// environment variable. NO_COLOR and --no-color both force color off
// regardless of Color; "always" forces it on; anything else ("auto",
// "", unrecognized) defers to whether stdout looks like a terminal,
// which the caller determines and passes as autoDetected.
func ResolveColor(cfg Config, noColorFlag bool, autoDetected bool) bool {
	if noColorFlag {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return autoDetected
	}
}
