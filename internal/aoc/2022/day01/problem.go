package aoc2022day01

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code-2022/internal/models"
)

var ErrNoElves = errors.New("no calorie groups in input")

type Config struct {
	TopN int
}

func DefaultConfig() Config {
	return Config{TopN: 3}
}

type Solver struct {
	cfg Config
}

func New(cfg Config) *Solver {
	return &Solver{cfg: cfg}
}

func (s *Solver) Day() int      { return 1 }
func (s *Solver) Title() string { return "Calorie Counting" }

func (s *Solver) Solve(input string) (models.Answer, error) {
	calories, err := getCalories(input)
	if err != nil {
		return models.Answer{}, err
	}

	return models.Answer{
		Part1: strconv.Itoa(part1(calories)),
		Part2: strconv.Itoa(part2(calories, s.cfg.TopN)),
	}, nil
}

func part1(calories []int) int {
	return slices.Max(calories)
}

func part2(calories []int, topN int) int {
	sorted := slices.Clone(calories)
	slices.SortFunc(sorted, func(a int, b int) int {
		return b - a
	})

	total := 0
	for i := 0; i < topN && i < len(sorted); i++ {
		total += sorted[i]
	}
	return total
}

// getCalories sums each blank-line separated group of integers.
func getCalories(input string) ([]int, error) {
	acc := []int{}
	total := 0
	inGroup := false

	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if inGroup {
				acc = append(acc, total)
			}
			total, inGroup = 0, false
			continue
		}

		c, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid calories %q: %w", i+1, line, err)
		}
		total += c
		inGroup = true
	}
	if inGroup {
		acc = append(acc, total)
	}

	if len(acc) == 0 {
		return nil, ErrNoElves
	}
	return acc, nil
}
