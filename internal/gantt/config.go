package gantt

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Palette maps the four outline-level tiers to bar fill colors. Level 4 and
// anything deeper share the Deep color.
type Palette struct {
	Level1 string `yaml:"level1"`
	Level2 string `yaml:"level2"`
	Level3 string `yaml:"level3"`
	Deep   string `yaml:"deep"`
}

// Config is the fixed per-run chart configuration. The pipeline stages are
// pure functions of (input, Config); two runs with the same pair produce
// identical geometry.
type Config struct {
	AllowedLevels []int   `yaml:"allowed_levels"`
	Indent        string  `yaml:"indent"`
	PadBeforeDays int     `yaml:"pad_before_days"`
	PadAfterDays  int     `yaml:"pad_after_days"`
	BarHalfHeight float64 `yaml:"bar_half_height"`
	Palette       Palette `yaml:"palette"`
}

// DefaultConfig returns the chart configuration matching the reference
// chart: levels 1-4 shown, two-space indent, asymmetric 5/30 day axis
// padding, 0.4 row-unit bars.
func DefaultConfig() Config {
	return Config{
		AllowedLevels: []int{1, 2, 3, 4},
		Indent:        "  ",
		PadBeforeDays: 5,
		PadAfterDays:  30,
		BarHalfHeight: 0.2,
		Palette: Palette{
			Level1: "black",
			Level2: "dimgray",
			Level3: "darkgray",
			Deep:   "steelblue",
		},
	}
}

// LoadConfig reads chart configuration from environment variables, falling
// back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GANTTFLOW_LEVELS"); v != "" {
		if levels, ok := parseLevels(v); ok {
			cfg.AllowedLevels = levels
		}
	}
	if v := os.Getenv("GANTTFLOW_PAD_BEFORE_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.PadBeforeDays = n
		}
	}
	if v := os.Getenv("GANTTFLOW_PAD_AFTER_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.PadAfterDays = n
		}
	}

	return cfg
}

// LoadConfigFile overlays settings from a YAML file onto cfg. Keys absent
// from the file keep their current values.
func LoadConfigFile(path string, cfg Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.BarHalfHeight <= 0 {
		return cfg, fmt.Errorf("config file %s: bar_half_height must be positive", path)
	}
	if len(cfg.AllowedLevels) == 0 {
		return cfg, fmt.Errorf("config file %s: allowed_levels must not be empty", path)
	}
	return cfg, nil
}

// ColorForLevel maps an outline level to its bar color tier.
func (c Config) ColorForLevel(level int) string {
	switch level {
	case 1:
		return c.Palette.Level1
	case 2:
		return c.Palette.Level2
	case 3:
		return c.Palette.Level3
	default:
		return c.Palette.Deep
	}
}

func (c Config) levelAllowed(level int) bool {
	for _, l := range c.AllowedLevels {
		if l == level {
			return true
		}
	}
	return false
}

func parseLevels(s string) ([]int, bool) {
	parts := strings.Split(s, ",")
	levels := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return nil, false
		}
		levels = append(levels, n)
	}
	return levels, true
}
