package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	day01 "github.com/povarna/advent-of-code-2022/internal/aoc/2022/day01"
	day02 "github.com/povarna/advent-of-code-2022/internal/aoc/2022/day02"
	day03 "github.com/povarna/advent-of-code-2022/internal/aoc/2022/day03"
	day04 "github.com/povarna/advent-of-code-2022/internal/aoc/2022/day04"
	day05 "github.com/povarna/advent-of-code-2022/internal/aoc/2022/day05"
	day06 "github.com/povarna/advent-of-code-2022/internal/aoc/2022/day06"
	day07 "github.com/povarna/advent-of-code-2022/internal/aoc/2022/day07"
	day08 "github.com/povarna/advent-of-code-2022/internal/aoc/2022/day08"
	day09 "github.com/povarna/advent-of-code-2022/internal/aoc/2022/day09"
	day10 "github.com/povarna/advent-of-code-2022/internal/aoc/2022/day10"
	"github.com/povarna/advent-of-code-2022/internal/config"
	"github.com/povarna/advent-of-code-2022/internal/executor"
	"github.com/povarna/advent-of-code-2022/internal/input"
	"github.com/povarna/advent-of-code-2022/internal/puzzle"
	"github.com/povarna/advent-of-code-2022/internal/redis"
	"github.com/rs/zerolog"
)

const (
	CacheDir   = "dir"
	CacheRedis = "redis"
	CacheNone  = "none"
)

type Config struct {
	Session       string
	BaseURL       string
	Year          int
	InputPath     string
	CacheMode     string
	CacheDir      string
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration
	APIPort       string
	LogLevel      string
}

type Dependencies struct {
	Executor *executor.Executor
	Registry *puzzle.Registry
	Logger   *zerolog.Logger
	close    func() error
}

// Close releases the cache connection, if any.
func (d *Dependencies) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

// LoadConfig reads the environment. BaseURL and Year stay empty/zero unless
// set so the puzzle config file can supply them.
func LoadConfig() *Config {
	return &Config{
		Session:       getEnv("AOC_SESSION", ""),
		BaseURL:       getEnv("AOC_BASE_URL", ""),
		Year:          getEnvInt("AOC_YEAR", 0),
		CacheMode:     getEnv("AOC_CACHE", CacheDir),
		CacheDir:      getEnv("AOC_CACHE_DIR", ".aoc-cache"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CacheTTL:      getEnvDuration("AOC_CACHE_TTL", 0),
		APIPort:       getEnv("AOC_API_PORT", "18082"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	// Load puzzle parameters from YAML
	puzzleConfig, err := config.LoadPuzzleConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzle config: %w", err)
	}

	registry, err := NewRegistry(puzzleConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build registry: %w", err)
	}

	deps := &Dependencies{
		Registry: registry,
		Logger:   logger,
	}

	var source executor.InputSource
	if cfg.InputPath != "" {
		source = input.NewFileSource(cfg.InputPath)
	} else {
		source = deps.remoteSource(ctx, cfg, puzzleConfig.Input, logger)
	}

	deps.Executor = executor.NewExecutor(registry, source, logger)

	return deps, nil
}

// NewRegistry builds every day from its configured parameters.
func NewRegistry(cfg *config.PuzzleConfig) (*puzzle.Registry, error) {
	d := cfg.Days

	return puzzle.NewRegistry(
		day01.New(day01.Config{TopN: d.Day01.TopN}),
		day02.New(),
		day03.New(day03.Config{GroupSize: d.Day03.GroupSize}),
		day04.New(),
		day05.New(),
		day06.New(day06.Config{
			PacketWindow:  d.Day06.PacketWindow,
			MessageWindow: d.Day06.MessageWindow,
		}),
		day07.New(day07.Config{
			Threshold:    d.Day07.Threshold,
			Capacity:     d.Day07.Capacity,
			RequiredFree: d.Day07.RequiredFree,
		}),
		day08.New(),
		day09.New(day09.Config{
			ShortKnots: d.Day09.ShortKnots,
			LongKnots:  d.Day09.LongKnots,
		}),
		day10.New(day10.Config{
			FirstSample: d.Day10.FirstSample,
			SampleEvery: d.Day10.SampleEvery,
			LastSample:  d.Day10.LastSample,
			ScreenWidth: d.Day10.ScreenWidth,
		}),
	)
}

// remoteSource fetches over HTTP behind the configured cache. An unreachable
// Redis downgrades to no cache.
func (d *Dependencies) remoteSource(ctx context.Context, cfg *Config, in config.Input, logger *zerolog.Logger) input.Source {
	baseURL := in.BaseURL
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	year := in.Year
	if cfg.Year != 0 {
		year = cfg.Year
	}

	fetcher := input.NewHTTPSource(baseURL, year, cfg.Session, logger)

	switch cfg.CacheMode {
	case CacheNone:
		return fetcher
	case CacheRedis:
		client, err := redis.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 3, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, input cache disabled")
			return fetcher
		}
		d.close = client.Close
		cache := input.NewRedisCache(client, "aoc_input:", cfg.CacheTTL)
		return input.NewCachedSource(cache, fetcher, year, logger)
	default:
		if cfg.CacheMode != CacheDir {
			logger.Warn().Str("cache", cfg.CacheMode).Msg("Unknown cache mode, using dir")
		}
		return input.NewCachedSource(input.NewDirCache(cfg.CacheDir), fetcher, year, logger)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
