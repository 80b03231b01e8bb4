package aoc2022day06

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code-2022/internal/models"
)

var ErrNoMarker = errors.New("no marker found")

type Config struct {
	PacketWindow  int
	MessageWindow int
}

func DefaultConfig() Config {
	return Config{PacketWindow: 4, MessageWindow: 14}
}

type Solver struct {
	cfg Config
}

func New(cfg Config) *Solver {
	return &Solver{cfg: cfg}
}

func (s *Solver) Day() int      { return 6 }
func (s *Solver) Title() string { return "Tuning Trouble" }

func (s *Solver) Solve(input string) (models.Answer, error) {
	stream := strings.TrimSpace(input)

	packet, err := markerEnd(stream, s.cfg.PacketWindow)
	if err != nil {
		return models.Answer{}, err
	}
	message, err := markerEnd(stream, s.cfg.MessageWindow)
	if err != nil {
		return models.Answer{}, err
	}

	return models.Answer{
		Part1: strconv.Itoa(packet),
		Part2: strconv.Itoa(message),
	}, nil
}

// markerEnd returns how many characters have been read when the last window
// of size distinct characters is complete.
func markerEnd(stream string, size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: window size %d", ErrNoMarker, size)
	}

	chars := []rune(stream)
	counts := make(map[rune]int, size)
	duplicates := 0

	for i, c := range chars {
		counts[c]++
		if counts[c] == 2 {
			duplicates++
		}

		if i >= size {
			out := chars[i-size]
			counts[out]--
			if counts[out] == 1 {
				duplicates--
			}
		}

		if i >= size-1 && duplicates == 0 {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: window size %d", ErrNoMarker, size)
}
