package mcpadapter

import (
	"context"
	"errors"
	"testing"

	day06 "github.com/povarna/advent-of-code-2022/internal/aoc/2022/day06"
	"github.com/povarna/advent-of-code-2022/internal/executor"
	"github.com/povarna/advent-of-code-2022/internal/puzzle"
	"github.com/rs/zerolog"
)

func newTestExecutor(t *testing.T) *executor.Executor {
	t.Helper()

	registry, err := puzzle.NewRegistry(day06.New(day06.DefaultConfig()))
	if err != nil {
		t.Fatal(err)
	}
	logger := zerolog.Nop()
	return executor.NewExecutor(registry, nil, &logger)
}

func TestSolvePuzzle(t *testing.T) {
	handler := NewSolvePuzzleHandler(newTestExecutor(t))

	_, result, err := handler(context.Background(), nil, SolvePuzzleInput{
		Day:   6,
		Input: "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Part1 != "7" || result.Part2 != "19" {
		t.Errorf("unexpected answers %s / %s", result.Part1, result.Part2)
	}
}

func TestSolvePuzzle_UnknownDay(t *testing.T) {
	handler := NewSolvePuzzleHandler(newTestExecutor(t))

	_, _, err := handler(context.Background(), nil, SolvePuzzleInput{Day: 9, Input: "R 4\n"})
	if !errors.Is(err, puzzle.ErrUnknownDay) {
		t.Errorf("expected ErrUnknownDay, got %v", err)
	}
}

func TestListPuzzles(t *testing.T) {
	handler := NewListPuzzlesHandler(newTestExecutor(t))

	_, out, err := handler(context.Background(), nil, ListPuzzlesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Puzzles) != 1 || out.Puzzles[0].Day != 6 {
		t.Errorf("unexpected puzzles: %+v", out.Puzzles)
	}
}
