package config

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const (
	configPathEnv     = "AOC_CONFIG_PATH"
	defaultConfigPath = "configs/puzzles.yaml"
)

// LoadPuzzleConfig reads the YAML file named by AOC_CONFIG_PATH (or the default
// path). A missing default file is not an error: every value has a default.
func LoadPuzzleConfig() (*PuzzleConfig, error) {
	path := os.Getenv(configPathEnv)
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	var cfg PuzzleConfig

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// fall through to defaults
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *PuzzleConfig) {
	if cfg.Title == "" {
		cfg.Title = "Advent of Code 2022"
	}
	if cfg.Input.BaseURL == "" {
		cfg.Input.BaseURL = "https://adventofcode.com"
	}
	if cfg.Input.Year == 0 {
		cfg.Input.Year = 2022
	}

	d := &cfg.Days
	setDefault(&d.Day01.TopN, 3)
	setDefault(&d.Day03.GroupSize, 3)
	setDefault(&d.Day06.PacketWindow, 4)
	setDefault(&d.Day06.MessageWindow, 14)
	setDefault(&d.Day07.Threshold, 100000)
	setDefault(&d.Day07.Capacity, 70000000)
	setDefault(&d.Day07.RequiredFree, 30000000)
	setDefault(&d.Day09.ShortKnots, 2)
	setDefault(&d.Day09.LongKnots, 10)
	setDefault(&d.Day10.FirstSample, 20)
	setDefault(&d.Day10.SampleEvery, 40)
	setDefault(&d.Day10.LastSample, 220)
	setDefault(&d.Day10.ScreenWidth, 40)
}

func setDefault[T int | int64](v *T, def T) {
	if *v == 0 {
		*v = def
	}
}

func (c *PuzzleConfig) Validate() error {
	d := c.Days

	positive := []struct {
		name  string
		value int64
	}{
		{"day01.top_n", int64(d.Day01.TopN)},
		{"day03.group_size", int64(d.Day03.GroupSize)},
		{"day06.packet_window", int64(d.Day06.PacketWindow)},
		{"day06.message_window", int64(d.Day06.MessageWindow)},
		{"day07.threshold", d.Day07.Threshold},
		{"day07.capacity", d.Day07.Capacity},
		{"day07.required_free", d.Day07.RequiredFree},
		{"day10.first_sample", int64(d.Day10.FirstSample)},
		{"day10.sample_every", int64(d.Day10.SampleEvery)},
		{"day10.last_sample", int64(d.Day10.LastSample)},
		{"day10.screen_width", int64(d.Day10.ScreenWidth)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("invalid %s: %d must be positive", p.name, p.value)
		}
	}

	if d.Day07.RequiredFree > d.Day07.Capacity {
		return fmt.Errorf("invalid day07.required_free: %d exceeds capacity %d", d.Day07.RequiredFree, d.Day07.Capacity)
	}
	if d.Day09.ShortKnots < 2 || d.Day09.LongKnots < 2 {
		return fmt.Errorf("invalid day09 rope: knots must be at least 2, got %d and %d", d.Day09.ShortKnots, d.Day09.LongKnots)
	}
	if d.Day10.LastSample < d.Day10.FirstSample {
		return fmt.Errorf("invalid day10.last_sample: %d before first_sample %d", d.Day10.LastSample, d.Day10.FirstSample)
	}
	if c.Input.Year < 2015 {
		return fmt.Errorf("invalid input.year: %d", c.Input.Year)
	}

	return nil
}
