package models

import (
	"fmt"
	"strings"
	"time"
)

// Answer holds both parts of a solved puzzle, already formatted.
type Answer struct {
	Part1 string `json:"part1"`
	Part2 string `json:"part2"`
}

// Input message

type SolveRequest struct {
	Day   int    `json:"day"`
	Input string `json:"input,omitempty"`
}

type InputSource string

const (
	InputSourceRequest InputSource = "request"
	InputSourceFetched InputSource = "fetched"
)

type PuzzleInfo struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
}

// Final output of one solve run
type SolveResult struct {
	Day         int           `json:"day"`
	Title       string        `json:"title"`
	Part1       string        `json:"part1"`
	Part2       string        `json:"part2"`
	InputSource InputSource   `json:"input_source"`
	Duration    time.Duration `json:"duration_ns"`
}

// Report renders the result as the two-line human readable summary.
// Multi-line answers (rendered screens) start on their own line.
func (r *SolveResult) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "AoC 2022, Day%02d (%s)\n", r.Day, r.Title)
	writePart(&b, 1, r.Part1)
	writePart(&b, 2, r.Part2)
	return b.String()
}

func writePart(b *strings.Builder, part int, answer string) {
	if strings.Contains(answer, "\n") {
		fmt.Fprintf(b, "Part %d:\n%s\n", part, answer)
		return
	}
	fmt.Fprintf(b, "Part %d: %s\n", part, answer)
}
