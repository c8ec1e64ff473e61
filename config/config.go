// Package config loads the editor's yaml configuration and reloads it live
// when the file changes on disk.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	BrickWidth   float64 `yaml:"brick_width"`
	BrickHeight  float64 `yaml:"brick_height"`
	Padding      float64 `yaml:"padding"`
	GridWidth    int     `yaml:"grid_width"`
	GridHeight   int     `yaml:"grid_height"`
	DefaultColor string  `yaml:"default_color"`
	AutosaveDir  string  `yaml:"autosave_dir"`
	LevelsDir    string  `yaml:"levels_dir"`
}

func Default() Config {
	return Config{
		BrickWidth:   64,
		BrickHeight:  32,
		Padding:      2,
		GridWidth:    10,
		GridHeight:   8,
		DefaultColor: "#3c78ff",
		AutosaveDir:  ".autosave",
		LevelsDir:    "levels",
	}
}

// Load reads path, filling absent fields with defaults. A missing file is
// not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.BrickWidth <= 0 {
		c.BrickWidth = d.BrickWidth
	}
	if c.BrickHeight <= 0 {
		c.BrickHeight = d.BrickHeight
	}
	if c.Padding < 0 {
		c.Padding = d.Padding
	}
	if c.GridWidth <= 0 {
		c.GridWidth = d.GridWidth
	}
	if c.GridHeight <= 0 {
		c.GridHeight = d.GridHeight
	}
	if c.DefaultColor == "" {
		c.DefaultColor = d.DefaultColor
	}
	if c.AutosaveDir == "" {
		c.AutosaveDir = d.AutosaveDir
	}
	if c.LevelsDir == "" {
		c.LevelsDir = d.LevelsDir
	}
}
