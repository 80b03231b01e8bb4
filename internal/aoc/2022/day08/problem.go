package aoc2022day08

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code-2022/internal/models"
)

var (
	ErrInvalidTree = errors.New("tree height is not a digit")
	ErrRaggedGrid  = errors.New("grid rows have different lengths")
	ErrEmptyGrid   = errors.New("empty grid")
)

// Grid is a rectangular map of tree heights.
type Grid struct {
	heights [][]byte
	rows    int
	cols    int
}

func (g *Grid) at(row, col int) byte {
	return g.heights[row][col]
}

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

func (s *Solver) Day() int      { return 8 }
func (s *Solver) Title() string { return "Treetop Tree House" }

func (s *Solver) Solve(input string) (models.Answer, error) {
	grid, err := ParseGrid(input)
	if err != nil {
		return models.Answer{}, err
	}

	return models.Answer{
		Part1: strconv.Itoa(CountVisible(grid)),
		Part2: strconv.Itoa(BestScenicScore(grid)),
	}, nil
}

func ParseGrid(input string) (*Grid, error) {
	g := &Grid{}

	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if g.cols != 0 && len(line) != g.cols {
			return nil, fmt.Errorf("line %d: %w: %d, want %d", i+1, ErrRaggedGrid, len(line), g.cols)
		}

		row := make([]byte, len(line))
		for j := 0; j < len(line); j++ {
			c := line[j]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("line %d col %d: %w: %q", i+1, j+1, ErrInvalidTree, c)
			}
			row[j] = c - '0'
		}
		g.heights = append(g.heights, row)
		g.cols = len(line)
	}

	g.rows = len(g.heights)
	if g.rows == 0 {
		return nil, ErrEmptyGrid
	}
	return g, nil
}

// CountVisible sweeps every row and column from both ends, marking trees taller
// than everything before them in that direction. Edge trees are always visible.
func CountVisible(g *Grid) int {
	visible := make([][]bool, g.rows)
	for r := range visible {
		visible[r] = make([]bool, g.cols)
	}

	sweep := func(cells func(i int) (int, int), n int) {
		tallest := -1
		for i := 0; i < n; i++ {
			r, c := cells(i)
			if h := int(g.at(r, c)); h > tallest {
				tallest = h
				visible[r][c] = true
			}
		}
	}

	for r := 0; r < g.rows; r++ {
		sweep(func(i int) (int, int) { return r, i }, g.cols)
		sweep(func(i int) (int, int) { return r, g.cols - 1 - i }, g.cols)
	}
	for c := 0; c < g.cols; c++ {
		sweep(func(i int) (int, int) { return i, c }, g.rows)
		sweep(func(i int) (int, int) { return g.rows - 1 - i, c }, g.rows)
	}

	total := 0
	for _, row := range visible {
		for _, v := range row {
			if v {
				total += 1
			}
		}
	}
	return total
}

var directions = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// ScenicScore multiplies the viewing distances in all four directions. A view
// stops at the first tree at least as tall as the one at (row, col).
func ScenicScore(g *Grid, row, col int) int {
	height := g.at(row, col)
	score := 1

	for _, d := range directions {
		distance := 0
		for r, c := row+d[0], col+d[1]; r >= 0 && r < g.rows && c >= 0 && c < g.cols; r, c = r+d[0], c+d[1] {
			distance++
			if g.at(r, c) >= height {
				break
			}
		}
		score *= distance
	}

	return score
}

func BestScenicScore(g *Grid) int {
	best := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			best = max(best, ScenicScore(g, r, c))
		}
	}
	return best
}
