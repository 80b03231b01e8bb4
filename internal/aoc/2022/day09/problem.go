package aoc2022day09

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code-2022/internal/models"
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrRopeLength  = errors.New("rope needs at least two knots")
)

type Config struct {
	ShortKnots int
	LongKnots  int
}

func DefaultConfig() Config {
	return Config{ShortKnots: 2, LongKnots: 10}
}

type Point struct {
	X, Y int
}

var steps = map[string]Point{
	"U": {0, 1},
	"D": {0, -1},
	"L": {-1, 0},
	"R": {1, 0},
}

type Move struct {
	Dir   Point
	Count int
}

// Follow moves p one step towards lead on each axis when they no longer touch.
func (p Point) Follow(lead Point) Point {
	dx, dy := lead.X-p.X, lead.Y-p.Y
	if abs(dx) <= 1 && abs(dy) <= 1 {
		return p
	}
	return Point{X: p.X + sign(dx), Y: p.Y + sign(dy)}
}

type Solver struct {
	cfg Config
}

func New(cfg Config) *Solver {
	return &Solver{cfg: cfg}
}

func (s *Solver) Day() int      { return 9 }
func (s *Solver) Title() string { return "Rope Bridge" }

func (s *Solver) Solve(input string) (models.Answer, error) {
	moves, err := parseMoves(input)
	if err != nil {
		return models.Answer{}, err
	}

	short, err := TailVisits(moves, s.cfg.ShortKnots)
	if err != nil {
		return models.Answer{}, err
	}
	long, err := TailVisits(moves, s.cfg.LongKnots)
	if err != nil {
		return models.Answer{}, err
	}

	return models.Answer{
		Part1: strconv.Itoa(short),
		Part2: strconv.Itoa(long),
	}, nil
}

// TailVisits simulates a rope of the given number of knots, head included,
// and counts the distinct positions the last knot occupies.
func TailVisits(moves []Move, knots int) (int, error) {
	if knots < 2 {
		return 0, fmt.Errorf("%w: %d", ErrRopeLength, knots)
	}

	rope := make([]Point, knots)
	visited := map[Point]struct{}{{}: {}}

	for _, m := range moves {
		for range m.Count {
			rope[0] = Point{X: rope[0].X + m.Dir.X, Y: rope[0].Y + m.Dir.Y}
			for i := 1; i < len(rope); i++ {
				rope[i] = rope[i].Follow(rope[i-1])
			}
			visited[rope[len(rope)-1]] = struct{}{}
		}
	}

	return len(visited), nil
}

func parseMoves(input string) ([]Move, error) {
	var moves []Move

	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d %q: %w", i+1, line, ErrInvalidMove)
		}
		dir, ok := steps[fields[0]]
		if !ok {
			return nil, fmt.Errorf("line %d %q: %w: unsupported direction %s", i+1, line, ErrInvalidMove, fields[0])
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil || count < 0 {
			return nil, fmt.Errorf("line %d %q: %w", i+1, line, ErrInvalidMove)
		}

		moves = append(moves, Move{Dir: dir, Count: count})
	}

	return moves, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
