// Package config loads router configuration from TOML.
//
//	domain = "myapp://"
//	default_screen = "home"
//	main_scene = "main"
//	history_capacity = 32
//	log_level = "info"
//
//	[transition]
//	fade_ms = 200
//
//	[input]
//	back_device = "/dev/input/event1"
//	back_key = 158
//	debounce_ms = 250
//
//	[[screens]]
//	id = "home"
//	tag = "home"
//	asset = "screens/home.png"
//
//	[[scenes]]
//	name = "level1"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

// Config is the root configuration structure.
type Config struct {
	Domain          string           `toml:"domain"`
	DefaultScreen   string           `toml:"default_screen"`
	MainScene       string           `toml:"main_scene"`
	HistoryCapacity int              `toml:"history_capacity"`
	LogLevel        string           `toml:"log_level"` // Empty keeps the current level
	Transition      TransitionConfig `toml:"transition"`
	Input           InputConfig      `toml:"input"`
	Screens         []ScreenConfig   `toml:"screens"`
	Scenes          []SceneConfig    `toml:"scenes"`
}

// TransitionConfig selects the default transition.
type TransitionConfig struct {
	FadeMS int `toml:"fade_ms"` // 0 means cut
}

// FadeDuration returns the configured fade length.
func (t TransitionConfig) FadeDuration() time.Duration {
	return time.Duration(t.FadeMS) * time.Millisecond
}

// InputConfig configures the hardware back button.
type InputConfig struct {
	BackDevice string `toml:"back_device"` // Empty disables the listener
	BackKey    int    `toml:"back_key"`
	DebounceMS int    `toml:"debounce_ms"`
}

// Debounce returns the minimum gap between back presses.
func (i InputConfig) Debounce() time.Duration {
	return time.Duration(i.DebounceMS) * time.Millisecond
}

// ScreenConfig registers one screen.
type ScreenConfig struct {
	ID    string `toml:"id"`
	Tag   string `toml:"tag"`
	Asset string `toml:"asset"`
}

// SceneConfig declares one loadable scene.
type SceneConfig struct {
	Name string `toml:"name"`
}

// Load reads and validates the configuration at path.
// Environment variables override values from the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates TOML configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parsing config file: unknown keys %s", strings.Join(keys, ", "))
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Default returns a Config with sensible defaults and no screens.
func Default() *Config {
	return &Config{
		Domain:    constants.DefaultDomain,
		MainScene: "main",
		Input: InputConfig{
			BackKey:    constants.DefaultBackKeyCode,
			DebounceMS: int(constants.DefaultBackDebounce / time.Millisecond),
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(constants.DomainEnvVar); v != "" {
		cfg.Domain = v
	}
	if v := os.Getenv(constants.DefaultScreenEnvVar); v != "" {
		cfg.DefaultScreen = v
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if !strings.HasSuffix(c.Domain, "://") || len(c.Domain) <= len("://") {
		return fmt.Errorf("domain %q must look like \"name://\"", c.Domain)
	}
	if len(c.Screens) == 0 {
		return errors.New("at least one screen is required")
	}
	if c.HistoryCapacity < 0 {
		return fmt.Errorf("history_capacity must not be negative, got %d", c.HistoryCapacity)
	}
	if c.Transition.FadeMS < 0 {
		return fmt.Errorf("transition.fade_ms must not be negative, got %d", c.Transition.FadeMS)
	}

	ids := make(map[string]string)
	tags := make(map[string]string)
	for i, s := range c.Screens {
		if s.ID == "" {
			return fmt.Errorf("screens[%d]: id is required", i)
		}
		if s.Tag == "" {
			return fmt.Errorf("screen %q: tag is required", s.ID)
		}
		if prev, ok := ids[s.ID]; ok {
			return fmt.Errorf("screen %q: id already used by %s", s.ID, prev)
		}
		if prev, ok := tags[s.Tag]; ok {
			return fmt.Errorf("screen %q: tag %q already used by screen %q", s.ID, s.Tag, prev)
		}
		ids[s.ID] = "a screen"
		tags[s.Tag] = s.ID
	}
	for i, s := range c.Scenes {
		if s.Name == "" {
			return fmt.Errorf("scenes[%d]: name is required", i)
		}
		if prev, ok := ids[s.Name]; ok {
			return fmt.Errorf("scene %q: name already used by %s", s.Name, prev)
		}
		ids[s.Name] = "a scene"
	}

	if c.DefaultScreen == "" {
		c.DefaultScreen = c.Screens[0].ID
	}
	if ids[c.DefaultScreen] != "a screen" {
		return fmt.Errorf("default_screen %q is not a configured screen", c.DefaultScreen)
	}
	return nil
}

// Entries returns the configured screens as registry entries.
func (c *Config) Entries() []router.Entry {
	entries := make([]router.Entry, len(c.Screens))
	for i, s := range c.Screens {
		entries[i] = router.Entry{ID: s.ID, Tag: router.Tag(s.Tag), Asset: s.Asset}
	}
	return entries
}

// SceneNames returns the names of the configured scenes.
func (c *Config) SceneNames() []string {
	names := make([]string, len(c.Scenes))
	for i, s := range c.Scenes {
		names[i] = s.Name
	}
	return names
}
