// Package config reads binary defaults from KNOBKIT_* environment variables
// and an optional config file. Command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "KNOBKIT"
	EnvConfigFile = "KNOBKIT_CONFIG"
)

// ErrInvalidConfig marks a setting outside its allowed values.
var ErrInvalidConfig = errors.New("config: invalid setting")

const (
	BackendWindow      = "window"
	BackendFramebuffer = "framebuffer"
)

// Debug log formats.
const (
	LogFormatZap   = "zap"
	LogFormatPlain = "plain"
)

// Viewer configures the interactive viewer.
type Viewer struct {
	Atlas     string
	Backend   string
	FBDev     string
	ShowValue bool
	Title     string
	Debug     bool
	DebugLog  string
	LogFormat string
	StdioLog  string
}

// Maker configures the atlas generator.
type Maker struct {
	Kind      string
	OutDir    string
	Link      string
	Viewer    string
	Debug     bool
	DebugLog  string
	LogFormat string
}

func load(defaults map[string]interface{}) (*viper.Viper, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if path := os.Getenv(EnvConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return v, nil
}

func getBool(v *viper.Viper, key string) (bool, error) {
	raw := v.GetString(key)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean (got %q)", ErrInvalidConfig, key, raw)
	}
	return b, nil
}

// ViewerFromEnv returns the viewer defaults.
func ViewerFromEnv() (Viewer, error) {
	v, err := load(map[string]interface{}{
		"atlas":      "knob.png",
		"backend":    BackendWindow,
		"fbdev":      "/dev/fb0",
		"title":      "knobkit",
		"debug_log":  "./knobkit-debug.log",
		"log_format": LogFormatZap,
	})
	if err != nil {
		return Viewer{}, err
	}
	cfg := Viewer{
		Atlas:     v.GetString("atlas"),
		Backend:   v.GetString("backend"),
		FBDev:     v.GetString("fbdev"),
		Title:     v.GetString("title"),
		DebugLog:  v.GetString("debug_log"),
		LogFormat: v.GetString("log_format"),
		StdioLog:  v.GetString("stdio_log"),
	}
	if cfg.ShowValue, err = getBool(v, "show_value"); err != nil {
		return Viewer{}, err
	}
	if cfg.Debug, err = getBool(v, "debug"); err != nil {
		return Viewer{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated settings.
func (c Viewer) Validate() error {
	switch c.Backend {
	case BackendWindow, BackendFramebuffer:
	default:
		return fmt.Errorf("%w: backend must be %q or %q (got %q)", ErrInvalidConfig, BackendWindow, BackendFramebuffer, c.Backend)
	}
	if c.Atlas == "" {
		return fmt.Errorf("%w: atlas path is empty", ErrInvalidConfig)
	}
	return validateLogFormat(c.LogFormat)
}

func validateLogFormat(f string) error {
	switch f {
	case LogFormatZap, LogFormatPlain:
		return nil
	default:
		return fmt.Errorf("%w: log format must be %q or %q (got %q)", ErrInvalidConfig, LogFormatZap, LogFormatPlain, f)
	}
}

// MakerFromEnv returns the generator defaults.
func MakerFromEnv() (Maker, error) {
	v, err := load(map[string]interface{}{
		"kind":       "knob",
		"out_dir":    ".",
		"link":       "knob.png",
		"viewer":     "knobkit",
		"debug_log":  "./knobkit-debug.log",
		"log_format": LogFormatZap,
	})
	if err != nil {
		return Maker{}, err
	}
	cfg := Maker{
		Kind:      v.GetString("kind"),
		OutDir:    v.GetString("out_dir"),
		Link:      v.GetString("link"),
		Viewer:    v.GetString("viewer"),
		DebugLog:  v.GetString("debug_log"),
		LogFormat: v.GetString("log_format"),
	}
	if cfg.Debug, err = getBool(v, "debug"); err != nil {
		return Maker{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated settings.
func (c Maker) Validate() error {
	switch c.Kind {
	case "knob", "switch":
	default:
		return fmt.Errorf("%w: kind must be knob or switch (got %q)", ErrInvalidConfig, c.Kind)
	}
	return validateLogFormat(c.LogFormat)
}
