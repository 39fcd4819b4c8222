// Package config loads and saves the stash configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/stash/internal/engine"
)

// Config holds all stash configuration.
type Config struct {
	General GeneralConfig   `toml:"general"`
	Tuning  TuningOverrides `toml:"tuning"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// Timezone is the IANA reference timezone all civil dates are
	// computed in, regardless of where the host runs.
	Timezone string `toml:"timezone"`
	// Currency is the symbol used when rendering amounts.
	Currency string `toml:"currency"`
	// DataDir overrides the default database location.
	DataDir string `toml:"data_dir,omitempty"`
}

// TuningOverrides allows user-defined values for the target and
// projection heuristics. Unset fields keep their defaults.
type TuningOverrides struct {
	IndefiniteShare       *float64 `toml:"indefinite_share,omitempty"`
	SurchargeMinAllowance *float64 `toml:"surcharge_min_allowance,omitempty"`
	SurchargeBelowTarget  *float64 `toml:"surcharge_below_target,omitempty"`
	SurchargeRate         *float64 `toml:"surcharge_rate,omitempty"`
	ProjectionCeilingDays *int     `toml:"projection_ceiling_days,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Timezone: "UTC",
			Currency: "$",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stash")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the document database.
func (c Config) DataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "stash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "stash")
}

// DBPath returns the full path to the document database.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir(), "stash.db")
}

// Location resolves the reference timezone. Falls back to UTC when the
// configured zone is unknown.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.General.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// EngineTuning merges the configured overrides over the stock heuristics.
func (c Config) EngineTuning() engine.Tuning {
	tun := engine.DefaultTuning()
	if v := c.Tuning.IndefiniteShare; v != nil {
		tun.IndefiniteShare = *v
	}
	if v := c.Tuning.SurchargeMinAllowance; v != nil {
		tun.SurchargeMinAllowance = *v
	}
	if v := c.Tuning.SurchargeBelowTarget; v != nil {
		tun.SurchargeBelowTarget = *v
	}
	if v := c.Tuning.SurchargeRate; v != nil {
		tun.SurchargeRate = *v
	}
	if v := c.Tuning.ProjectionCeilingDays; v != nil {
		tun.ProjectionCeilingDays = *v
	}
	return tun
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
