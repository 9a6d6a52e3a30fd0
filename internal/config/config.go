// Package config loads and persists the manager configuration.
//
// The file lives at ~/.config/xpad/config.yaml and is created with
// defaults on first run. Top-level values apply to every controller;
// the slots map overrides them per user index.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// The deadzone defaults are the thresholds the XInput headers document,
// expressed as fractions of full deflection.
const (
	defaultPollMS  = 5
	defaultProbeMS = 2000
	defaultMax     = 4

	defaultLeftDeadzone     = 7849.0 / 32767.0
	defaultRightDeadzone    = 8689.0 / 32767.0
	defaultTriggerThreshold = 30.0 / 255.0
)

type Config struct {
	PollIntervalMS   int     `yaml:"poll_interval_ms"`
	ProbeIntervalMS  int     `yaml:"probe_interval_ms"`
	MaxControllers   int     `yaml:"max_controllers"`
	Backend          string  `yaml:"backend"`
	LeftDeadzone     float64 `yaml:"left_deadzone"`
	RightDeadzone    float64 `yaml:"right_deadzone"`
	TriggerThreshold float64 `yaml:"trigger_threshold"`
	// Per-slot overrides keyed by user index
	Slots map[int]SlotConfig `yaml:"slots,omitempty"`
}

type SlotConfig struct {
	PollIntervalMS   int     `yaml:"poll_interval_ms,omitempty"`
	LeftDeadzone     float64 `yaml:"left_deadzone,omitempty"`
	RightDeadzone    float64 `yaml:"right_deadzone,omitempty"`
	TriggerThreshold float64 `yaml:"trigger_threshold,omitempty"`
}

func Defaults() *Config {
	return &Config{
		PollIntervalMS:   defaultPollMS,
		ProbeIntervalMS:  defaultProbeMS,
		MaxControllers:   defaultMax,
		Backend:          "auto",
		LeftDeadzone:     defaultLeftDeadzone,
		RightDeadzone:    defaultRightDeadzone,
		TriggerThreshold: defaultTriggerThreshold,
	}
}

// Slot returns the effective tuning for a user slot. If a per-slot
// override is not present or fields are zero, fall back to the
// top-level values.
func (c *Config) Slot(slot int) *SlotConfig {
	res := &SlotConfig{
		PollIntervalMS:   c.PollIntervalMS,
		LeftDeadzone:     c.LeftDeadzone,
		RightDeadzone:    c.RightDeadzone,
		TriggerThreshold: c.TriggerThreshold,
	}

	if c.Slots == nil {
		return res
	}

	if sc, ok := c.Slots[slot]; ok {
		if sc.PollIntervalMS != 0 {
			res.PollIntervalMS = sc.PollIntervalMS
		}
		if sc.LeftDeadzone != 0 {
			res.LeftDeadzone = sc.LeftDeadzone
		}
		if sc.RightDeadzone != 0 {
			res.RightDeadzone = sc.RightDeadzone
		}
		if sc.TriggerThreshold != 0 {
			res.TriggerThreshold = sc.TriggerThreshold
		}
	}

	return res
}

func (c *Config) PollInterval(slot int) time.Duration {
	ms := c.Slot(slot).PollIntervalMS
	if ms < 1 {
		ms = defaultPollMS
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Config) ProbeInterval() time.Duration {
	ms := c.ProbeIntervalMS
	if ms < 1 {
		ms = defaultProbeMS
	}
	return time.Duration(ms) * time.Millisecond
}

// Path returns the default config file location, creating its parent
// directory if needed.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "xpad")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "config.yaml"), nil
}

func Save(conf *Config, path string) error {
	data, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}

	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return os.WriteFile(path, data, 0644)
}

// Load reads the configuration at path. A missing file is written out
// with defaults; a file that fails to parse is an error.
func Load(path string) (*Config, error) {
	conf := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		err = Save(conf, path)
		if err != nil {
			return nil, err
		}
		return conf, nil
	}

	err = yaml.Unmarshal(data, conf)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	sanitize(conf)
	return conf, nil
}

func sanitize(conf *Config) {
	if conf.PollIntervalMS < 1 {
		conf.PollIntervalMS = defaultPollMS
	}
	if conf.ProbeIntervalMS < 1 {
		conf.ProbeIntervalMS = defaultProbeMS
	}
	if conf.MaxControllers < 1 || conf.MaxControllers > defaultMax {
		conf.MaxControllers = defaultMax
	}

	conf.Backend = strings.ToLower(strings.TrimSpace(conf.Backend))
	if conf.Backend == "" {
		conf.Backend = "auto"
	}

	conf.LeftDeadzone = clampFraction(conf.LeftDeadzone)
	conf.RightDeadzone = clampFraction(conf.RightDeadzone)
	conf.TriggerThreshold = clampFraction(conf.TriggerThreshold)

	for slot, sc := range conf.Slots {
		sc.LeftDeadzone = clampFraction(sc.LeftDeadzone)
		sc.RightDeadzone = clampFraction(sc.RightDeadzone)
		sc.TriggerThreshold = clampFraction(sc.TriggerThreshold)
		conf.Slots[slot] = sc
	}
}

// clampFraction keeps deadzones below 1 so the rescale denominator
// never reaches zero.
func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 0.99 {
		return 0.99
	}
	return v
}
