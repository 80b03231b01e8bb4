package aoc2022day10

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code-2022/internal/models"
)

var ErrInvalidInstruction = errors.New("invalid instruction")

type Config struct {
	FirstSample int
	SampleEvery int
	LastSample  int
	ScreenWidth int
}

func DefaultConfig() Config {
	return Config{
		FirstSample: 20,
		SampleEvery: 40,
		LastSample:  220,
		ScreenWidth: 40,
	}
}

const (
	litPixel  = '#'
	darkPixel = '.'
)

// Instruction is noop (Addx false) or addx V.
type Instruction struct {
	Addx  bool
	Value int
}

func (in Instruction) cycles() int {
	if in.Addx {
		return 2
	}
	return 1
}

type Solver struct {
	cfg Config
}

func New(cfg Config) *Solver {
	return &Solver{cfg: cfg}
}

func (s *Solver) Day() int      { return 10 }
func (s *Solver) Title() string { return "Cathode-Ray Tube" }

func (s *Solver) Solve(input string) (models.Answer, error) {
	program, err := parseProgram(input)
	if err != nil {
		return models.Answer{}, err
	}

	return models.Answer{
		Part1: strconv.Itoa(SignalStrength(program, s.cfg)),
		Part2: Render(program, s.cfg.ScreenWidth),
	}, nil
}

// Execute runs the program and calls sample once per cycle with the value of
// X during that cycle, before any addx issued in it takes effect.
func Execute(program []Instruction, sample func(cycle, x int)) {
	cycle, x := 0, 1
	for _, in := range program {
		for range in.cycles() {
			cycle++
			sample(cycle, x)
		}
		if in.Addx {
			x += in.Value
		}
	}
}

func SignalStrength(program []Instruction, cfg Config) int {
	total := 0
	Execute(program, func(cycle, x int) {
		if cycle >= cfg.FirstSample && cycle <= cfg.LastSample && (cycle-cfg.FirstSample)%cfg.SampleEvery == 0 {
			total += cycle * x
		}
	})
	return total
}

// Render draws one pixel per cycle; it is lit when the 3-wide sprite centred
// on X covers the column being drawn.
func Render(program []Instruction, width int) string {
	var screen strings.Builder
	Execute(program, func(cycle, x int) {
		col := (cycle - 1) % width
		if col == 0 && cycle > 1 {
			screen.WriteByte('\n')
		}
		if col >= x-1 && col <= x+1 {
			screen.WriteByte(litPixel)
		} else {
			screen.WriteByte(darkPixel)
		}
	})
	return screen.String()
}

func parseProgram(input string) ([]Instruction, error) {
	var program []Instruction

	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch {
		case fields[0] == "noop" && len(fields) == 1:
			program = append(program, Instruction{})
		case fields[0] == "addx" && len(fields) == 2:
			v, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d %q: %w: %v", i+1, line, ErrInvalidInstruction, err)
			}
			program = append(program, Instruction{Addx: true, Value: v})
		default:
			return nil, fmt.Errorf("line %d %q: %w", i+1, line, ErrInvalidInstruction)
		}
	}

	return program, nil
}
