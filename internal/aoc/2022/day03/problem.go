package aoc2022day03

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code-2022/internal/models"
)

var (
	ErrOddRucksack = errors.New("rucksack has an odd number of items")
	ErrInvalidItem = errors.New("invalid item")
	ErrGroupSize   = errors.New("rucksack count is not a multiple of the group size")
)

type Config struct {
	GroupSize int
}

func DefaultConfig() Config {
	return Config{GroupSize: 3}
}

type Solver struct {
	cfg Config
}

func New(cfg Config) *Solver {
	return &Solver{cfg: cfg}
}

func (s *Solver) Day() int      { return 3 }
func (s *Solver) Title() string { return "Rucksack Reorganization" }

func (s *Solver) Solve(input string) (models.Answer, error) {
	rucksacks, err := parseRucksacks(input)
	if err != nil {
		return models.Answer{}, err
	}

	p2, err := part2(rucksacks, s.cfg.GroupSize)
	if err != nil {
		return models.Answer{}, err
	}

	return models.Answer{
		Part1: strconv.Itoa(part1(rucksacks)),
		Part2: strconv.Itoa(p2),
	}, nil
}

func part1(rucksacks []string) int {
	total := 0
	for _, r := range rucksacks {
		half := len(r) / 2
		total += priority(common(r[:half], r[half:]))
	}
	return total
}

func part2(rucksacks []string, groupSize int) (int, error) {
	if groupSize <= 0 || len(rucksacks)%groupSize != 0 {
		return 0, fmt.Errorf("%w: %d rucksacks, group size %d", ErrGroupSize, len(rucksacks), groupSize)
	}

	total := 0
	for i := 0; i < len(rucksacks); i += groupSize {
		total += priority(common(rucksacks[i : i+groupSize]...))
	}
	return total, nil
}

// common returns an item present in every set, or 0 when there is none.
func common(sets ...string) byte {
	var seen [128]int
	for i, set := range sets {
		for j := 0; j < len(set); j++ {
			c := set[j]
			if seen[c] == i {
				seen[c] = i + 1
			}
		}
	}
	for c := range seen {
		if seen[c] == len(sets) && len(sets) > 0 {
			return byte(c)
		}
	}
	return 0
}

func priority(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27
	default:
		return 0
	}
}

func parseRucksacks(input string) ([]string, error) {
	var rucksacks []string

	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if len(line)%2 != 0 {
			return nil, fmt.Errorf("line %d %q: %w", i+1, line, ErrOddRucksack)
		}
		for j := 0; j < len(line); j++ {
			if priority(line[j]) == 0 {
				return nil, fmt.Errorf("line %d %q: %w", i+1, line, ErrInvalidItem)
			}
		}
		rucksacks = append(rucksacks, line)
	}

	return rucksacks, nil
}
