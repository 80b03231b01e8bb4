package aoc2022day04

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code-2022/internal/models"
)

var ErrInvalidPair = errors.New("invalid assignment pair")

type assignment struct {
	lo, hi int
}

func (a assignment) contains(other assignment) bool {
	return a.lo <= other.lo && other.hi <= a.hi
}

func (a assignment) overlaps(other assignment) bool {
	return a.lo <= other.hi && other.lo <= a.hi
}

type pair [2]assignment

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

func (s *Solver) Day() int      { return 4 }
func (s *Solver) Title() string { return "Camp Cleanup" }

func (s *Solver) Solve(input string) (models.Answer, error) {
	pairs, err := parsePairs(input)
	if err != nil {
		return models.Answer{}, err
	}

	return models.Answer{
		Part1: strconv.Itoa(count(pairs, func(p pair) bool { return p[0].contains(p[1]) || p[1].contains(p[0]) })),
		Part2: strconv.Itoa(count(pairs, func(p pair) bool { return p[0].overlaps(p[1]) })),
	}, nil
}

func count(pairs []pair, match func(pair) bool) int {
	total := 0
	for _, p := range pairs {
		if match(p) {
			total += 1
		}
	}
	return total
}

func parsePairs(input string) ([]pair, error) {
	var pairs []pair

	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		left, right, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("line %d %q: %w", i+1, line, ErrInvalidPair)
		}

		var p pair
		for j, part := range []string{left, right} {
			a, err := parseAssignment(part)
			if err != nil {
				return nil, fmt.Errorf("line %d %q: %w", i+1, line, err)
			}
			p[j] = a
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}

func parseAssignment(s string) (assignment, error) {
	loStr, hiStr, ok := strings.Cut(s, "-")
	if !ok {
		return assignment{}, ErrInvalidPair
	}

	lo, err := strconv.Atoi(loStr)
	if err != nil {
		return assignment{}, fmt.Errorf("%w: %v", ErrInvalidPair, err)
	}
	hi, err := strconv.Atoi(hiStr)
	if err != nil {
		return assignment{}, fmt.Errorf("%w: %v", ErrInvalidPair, err)
	}
	if lo > hi {
		return assignment{}, fmt.Errorf("%w: range %d-%d runs backwards", ErrInvalidPair, lo, hi)
	}

	return assignment{lo: lo, hi: hi}, nil
}
