package aoc2022day02

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code-2022/internal/models"
)

var ErrInvalidRound = errors.New("invalid round")

type shape int

const (
	rock shape = iota
	paper
	scissors
)

type outcome int

const (
	loss outcome = iota
	draw
	win
)

type round struct {
	opponent shape
	column   int // 0, 1 or 2 for X, Y, Z
}

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

func (s *Solver) Day() int      { return 2 }
func (s *Solver) Title() string { return "Rock Paper Scissors" }

func (s *Solver) Solve(input string) (models.Answer, error) {
	rounds, err := parseRounds(input)
	if err != nil {
		return models.Answer{}, err
	}

	return models.Answer{
		Part1: strconv.Itoa(part1(rounds)),
		Part2: strconv.Itoa(part2(rounds)),
	}, nil
}

// part1 reads the second column as the shape we play.
func part1(rounds []round) int {
	total := 0
	for _, r := range rounds {
		ours := shape(r.column)
		total += score(ours, play(ours, r.opponent))
	}
	return total
}

// part2 reads the second column as the outcome we need.
func part2(rounds []round) int {
	total := 0
	for _, r := range rounds {
		want := outcome(r.column)
		ours := shapeFor(r.opponent, want)
		total += score(ours, want)
	}
	return total
}

func play(ours, theirs shape) outcome {
	switch {
	case ours == theirs:
		return draw
	case ours == (theirs+1)%3:
		return win
	default:
		return loss
	}
}

func shapeFor(theirs shape, want outcome) shape {
	switch want {
	case draw:
		return theirs
	case win:
		return (theirs + 1) % 3
	default:
		return (theirs + 2) % 3
	}
}

func score(ours shape, o outcome) int {
	return int(ours) + 1 + int(o)*3
}

func parseRounds(input string) ([]round, error) {
	var rounds []round

	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 || len(fields[0]) != 1 || len(fields[1]) != 1 {
			return nil, fmt.Errorf("line %d %q: %w", i+1, line, ErrInvalidRound)
		}

		opponent := fields[0][0]
		column := fields[1][0]
		if opponent < 'A' || opponent > 'C' || column < 'X' || column > 'Z' {
			return nil, fmt.Errorf("line %d %q: %w", i+1, line, ErrInvalidRound)
		}

		rounds = append(rounds, round{
			opponent: shape(opponent - 'A'),
			column:   int(column - 'X'),
		})
	}

	return rounds, nil
}
