package aoc2022day07

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/povarna/advent-of-code-2022/internal/models"
)

var ErrNoCandidate = errors.New("no directory is large enough to free the required space")

type Config struct {
	Threshold    int64
	Capacity     int64
	RequiredFree int64
}

func DefaultConfig() Config {
	return Config{
		Threshold:    100000,
		Capacity:     70000000,
		RequiredFree: 30000000,
	}
}

type Solver struct {
	cfg Config
}

func New(cfg Config) *Solver {
	return &Solver{cfg: cfg}
}

func (s *Solver) Day() int      { return 7 }
func (s *Solver) Title() string { return "No Space Left On Device" }

func (s *Solver) Solve(input string) (models.Answer, error) {
	sizes, err := DirectorySizes(input)
	if err != nil {
		return models.Answer{}, err
	}

	smallest, err := SmallestToFree(sizes, s.cfg.Capacity, s.cfg.RequiredFree)
	if err != nil {
		return models.Answer{}, err
	}

	return models.Answer{
		Part1: strconv.FormatInt(SumAtMost(sizes, s.cfg.Threshold), 10),
		Part2: strconv.FormatInt(smallest, 10),
	}, nil
}

// DirectorySizes runs the whole pipeline from transcript to flat size list.
func DirectorySizes(transcript string) ([]DirSize, error) {
	cmds, err := ParseTranscript(transcript)
	if err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}

	tree, err := BuildTree(cmds)
	if err != nil {
		return nil, fmt.Errorf("replay transcript: %w", err)
	}

	return tree.Sizes(), nil
}

// SumAtMost adds up every directory whose size does not exceed threshold.
func SumAtMost(sizes []DirSize, threshold int64) int64 {
	var total int64
	for _, d := range sizes {
		if d.Size <= threshold {
			total += d.Size
		}
	}
	return total
}

// SmallestToFree picks the smallest directory whose deletion leaves at least
// required bytes free on a disk of the given capacity. sizes[0] must be the root.
func SmallestToFree(sizes []DirSize, capacity, required int64) (int64, error) {
	if len(sizes) == 0 {
		return 0, ErrNoCandidate
	}

	free := capacity - sizes[0].Size
	deficit := required - free

	best := int64(-1)
	for _, d := range sizes {
		if d.Size >= deficit && (best < 0 || d.Size < best) {
			best = d.Size
		}
	}

	if best < 0 {
		return 0, fmt.Errorf("%w: need %d", ErrNoCandidate, deficit)
	}
	return best, nil
}
