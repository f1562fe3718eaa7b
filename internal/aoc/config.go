// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNoSession is returned by network operations when no session token is
// configured.
var ErrNoSession = errors.New("aoc: no session token (set AOC_SESSION)")

// Config holds the harness settings.
type Config struct {
	// Year is the event year.
	Year int `yaml:"year"`

	// Session is the value of the website's session cookie.
	Session string `yaml:"session"`

	// Dir is the directory holding one dayNN directory per puzzle.
	Dir string `yaml:"dir"`

	// BaseURL is the website root, without a trailing slash.
	BaseURL string `yaml:"base_url"`

	// Ledger is the path of the submission database.
	Ledger string `yaml:"ledger"`

	// Timeout bounds every HTTP request.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Year:    2021,
		Dir:     "challenges",
		BaseURL: "https://adventofcode.com",
		Ledger:  filepath.Join("challenges", "submissions.db"),
		Timeout: 30 * time.Second,
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
// A missing file is not an error. Environment variables AOC_SESSION,
// AOC_YEAR and AOC_DIR override the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("AOC_SESSION"); v != "" {
		c.Session = v
	}
	if v := os.Getenv("AOC_YEAR"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid AOC_YEAR %q: %w", v, err)
		}
		c.Year = year
	}
	if v := os.Getenv("AOC_DIR"); v != "" {
		c.Dir = v
	}
	return nil
}

// DayDir returns the directory of the given day.
func (c *Config) DayDir(day int) string {
	return filepath.Join(c.Dir, fmt.Sprintf("day%02d", day))
}
