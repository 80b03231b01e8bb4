package aoc2022day05

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code-2022/internal/models"
)

var (
	ErrInvalidDrawing = errors.New("invalid crate drawing")
	ErrInvalidMove    = errors.New("invalid move")
	ErrUnknownStack   = errors.New("unknown stack")
	ErrEmptyStack     = errors.New("not enough crates on stack")
)

// Stacks holds one slice per stack with the top crate last.
type Stacks [][]byte

func (s Stacks) clone() Stacks {
	c := make(Stacks, len(s))
	for i, stack := range s {
		c[i] = slices.Clone(stack)
	}
	return c
}

// Tops returns the top crate of every stack, a space for empty ones.
func (s Stacks) Tops() string {
	var b strings.Builder
	for _, stack := range s {
		if len(stack) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(stack[len(stack)-1])
	}
	return b.String()
}

type Move struct {
	Count  int
	From   int
	To     int
	LineNo int
}

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

func (s *Solver) Day() int      { return 5 }
func (s *Solver) Title() string { return "Supply Stacks" }

func (s *Solver) Solve(input string) (models.Answer, error) {
	stacks, moves, err := parseInput(input)
	if err != nil {
		return models.Answer{}, err
	}

	one, err := apply(stacks.clone(), moves, false)
	if err != nil {
		return models.Answer{}, err
	}
	all, err := apply(stacks.clone(), moves, true)
	if err != nil {
		return models.Answer{}, err
	}

	return models.Answer{Part1: one.Tops(), Part2: all.Tops()}, nil
}

// apply runs the moves. With keepOrder the crates of one move travel together
// (CrateMover 9001), otherwise they are moved one by one (CrateMover 9000).
func apply(stacks Stacks, moves []Move, keepOrder bool) (Stacks, error) {
	for _, m := range moves {
		if m.From < 1 || m.From > len(stacks) || m.To < 1 || m.To > len(stacks) {
			return nil, fmt.Errorf("line %d: %w: move %d from %d to %d", m.LineNo, ErrUnknownStack, m.Count, m.From, m.To)
		}

		from, to := m.From-1, m.To-1
		src := stacks[from]
		if m.Count > len(src) {
			return nil, fmt.Errorf("line %d: %w: stack %d has %d, need %d", m.LineNo, ErrEmptyStack, m.From, len(src), m.Count)
		}

		// a crate lifted and set back on its own stack leaves it unchanged
		if from == to {
			continue
		}

		moved := slices.Clone(src[len(src)-m.Count:])
		if !keepOrder {
			slices.Reverse(moved)
		}
		stacks[from] = src[:len(src)-m.Count]
		stacks[to] = append(stacks[to], moved...)
	}
	return stacks, nil
}

func parseInput(input string) (Stacks, []Move, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	drawing, procedure, ok := strings.Cut(strings.TrimLeft(input, "\n"), "\n\n")
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing blank line before moves", ErrInvalidDrawing)
	}

	stacks, err := parseDrawing(drawing)
	if err != nil {
		return nil, nil, err
	}

	offset := strings.Count(drawing, "\n") + 3
	moves, err := parseMoves(procedure, offset)
	if err != nil {
		return nil, nil, err
	}

	return stacks, moves, nil
}

func parseDrawing(drawing string) (Stacks, error) {
	lines := strings.Split(drawing, "\n")
	labels := strings.Fields(lines[len(lines)-1])
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: missing stack labels", ErrInvalidDrawing)
	}

	stacks := make(Stacks, len(labels))
	// bottom row first so the top crate ends up last
	for i := len(lines) - 2; i >= 0; i-- {
		line := lines[i]
		for col := range stacks {
			pos := 1 + 4*col
			if pos >= len(line) || line[pos] == ' ' {
				continue
			}
			if line[pos-1] != '[' {
				return nil, fmt.Errorf("%w: line %d %q", ErrInvalidDrawing, i+1, line)
			}
			stacks[col] = append(stacks[col], line[pos])
		}
	}

	return stacks, nil
}

func parseMoves(procedure string, firstLine int) ([]Move, error) {
	var moves []Move

	for i, raw := range strings.Split(procedure, "\n") {
		lineNo := firstLine + i
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 6 || fields[0] != "move" || fields[2] != "from" || fields[4] != "to" {
			return nil, fmt.Errorf("line %d %q: %w", lineNo, line, ErrInvalidMove)
		}

		var nums [3]int
		for j, f := range []string{fields[1], fields[3], fields[5]} {
			n, err := strconv.Atoi(f)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("line %d %q: %w", lineNo, line, ErrInvalidMove)
			}
			nums[j] = n
		}

		moves = append(moves, Move{Count: nums[0], From: nums[1], To: nums[2], LineNo: lineNo})
	}

	return moves, nil
}
