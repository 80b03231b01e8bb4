package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/advent-of-code-2022/internal/models"
	"github.com/povarna/advent-of-code-2022/internal/puzzle"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=mocks/mock_executor.go -package=mocks . SolverRegistry,InputSource
//go:generate mockgen -destination=mocks/mock_solver.go -package=mocks github.com/povarna/advent-of-code-2022/internal/puzzle Solver

// SolverRegistry resolves a day to its solver
type SolverRegistry interface {
	Get(day int) (puzzle.Solver, error)
	Days() []int
}

// InputSource supplies the puzzle input when the request carries none
type InputSource interface {
	Fetch(ctx context.Context, day int) (string, error)
}

var (
	ErrFetchInput = errors.New("failed to fetch input")
	ErrSolve      = errors.New("failed to solve puzzle")
)

type Executor struct {
	registry SolverRegistry
	source   InputSource
	logger   *zerolog.Logger
}

func NewExecutor(registry SolverRegistry, source InputSource, logger *zerolog.Logger) *Executor {
	return &Executor{
		registry: registry,
		source:   source,
		logger:   logger,
	}
}

// Execute runs one solve. Errors wrap puzzle.ErrUnknownDay, ErrFetchInput or
// ErrSolve together with the underlying cause.
func (e *Executor) Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error) {
	result := models.SolveResult{Day: req.Day}

	solver, err := e.registry.Get(req.Day)
	if err != nil {
		e.logger.Warn().Int("day", req.Day).Msg("No solver registered")
		return result, err
	}
	result.Title = solver.Title()

	text := req.Input
	result.InputSource = models.InputSourceRequest
	if text == "" {
		if e.source == nil {
			return result, fmt.Errorf("%w: day %d: no input source configured", ErrFetchInput, req.Day)
		}
		text, err = e.source.Fetch(ctx, req.Day)
		if err != nil {
			e.logger.Error().Err(err).Int("day", req.Day).Msg("Input fetch failed")
			return result, fmt.Errorf("%w: day %d: %w", ErrFetchInput, req.Day, err)
		}
		result.InputSource = models.InputSourceFetched
	}

	e.logger.Info().
		Int("day", req.Day).
		Str("input_source", string(result.InputSource)).
		Int("input_bytes", len(text)).
		Msg("Solving puzzle")

	start := time.Now()
	answer, err := solver.Solve(text)
	result.Duration = time.Since(start)
	if err != nil {
		e.logger.Error().Err(err).Int("day", req.Day).Msg("Solve failed")
		return result, fmt.Errorf("%w: day %d: %w", ErrSolve, req.Day, err)
	}

	result.Part1 = answer.Part1
	result.Part2 = answer.Part2

	e.logger.Info().
		Int("day", req.Day).
		Dur("duration", result.Duration).
		Msg("Puzzle solved")

	return result, nil
}

// Puzzles lists the registered days in ascending order.
func (e *Executor) Puzzles() []models.PuzzleInfo {
	days := e.registry.Days()
	infos := make([]models.PuzzleInfo, 0, len(days))
	for _, day := range days {
		solver, err := e.registry.Get(day)
		if err != nil {
			continue
		}
		infos = append(infos, models.PuzzleInfo{Day: day, Title: solver.Title()})
	}
	return infos
}
