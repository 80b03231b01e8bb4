package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/advent-of-code-2022/internal/models"
	"github.com/povarna/advent-of-code-2022/internal/setup"
	applog "github.com/povarna/advent-of-code-2022/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg := setup.LoadConfig()

	dayFlag := flag.String("day", "all", "day to solve (1-25) or all")
	inputFlag := flag.String("input", "", "input file path, - for stdin")
	fetchFlag := flag.Bool("fetch", false, "download inputs from the puzzle site")
	configFlag := flag.String("config", "", "puzzle parameters YAML file")
	levelFlag := flag.String("log-level", cfg.LogLevel, "log level")
	flag.Parse()

	logger := applog.New(*levelFlag, true)

	if *configFlag != "" {
		os.Setenv("AOC_CONFIG_PATH", *configFlag)
	}

	if err := validateFlags(*dayFlag, *inputFlag, *fetchFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	cfg.InputPath = *inputFlag

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load dependencies")
	}
	defer deps.Close()

	days := deps.Registry.Days()
	if *dayFlag != "all" {
		day, _ := strconv.Atoi(*dayFlag)
		days = []int{day}
	}

	failed := false
	for _, day := range days {
		result, err := deps.Executor.Execute(ctx, models.SolveRequest{Day: day})
		if err != nil {
			logger.Error().Err(err).Int("day", day).Msg("Day failed")
			failed = true
			continue
		}
		fmt.Print(result.Report())
	}

	if failed {
		deps.Close()
		os.Exit(1)
	}
}

func validateFlags(day, inputPath string, fetch bool) error {
	if day != "all" {
		if _, err := strconv.Atoi(day); err != nil {
			return fmt.Errorf("invalid -day %q: want a number or all", day)
		}
	}
	switch {
	case inputPath != "" && fetch:
		return errors.New("-input and -fetch are mutually exclusive")
	case inputPath == "" && !fetch:
		return errors.New("one of -input or -fetch is required")
	case inputPath != "" && day == "all":
		return errors.New("-input needs a single -day")
	}
	return nil
}
