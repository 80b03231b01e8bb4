package aoc2022day01

import (
	"errors"
	"slices"
	"testing"
)

const sampleInput = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestSolve(t *testing.T) {
	answer, err := New(DefaultConfig()).Solve(sampleInput)
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if answer.Part1 != "24000" {
		t.Errorf("Part1 = %s, want 24000", answer.Part1)
	}
	if answer.Part2 != "45000" {
		t.Errorf("Part2 = %s, want 45000", answer.Part2)
	}
}

func TestGetCalories(t *testing.T) {
	got, err := getCalories(sampleInput)
	if err != nil {
		t.Fatalf("getCalories() failed: %v", err)
	}
	want := []int{6000, 4000, 11000, 24000, 10000}
	if !slices.Equal(got, want) {
		t.Errorf("getCalories() = %v, want %v", got, want)
	}
}

func TestPart2_FewerGroupsThanTopN(t *testing.T) {
	if got := part2([]int{5, 7}, 3); got != 12 {
		t.Errorf("part2() = %d, want 12", got)
	}
}

func TestSolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty input", input: "\n\n", wantErr: ErrNoElves},
		{name: "not a number", input: "100\nabc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(DefaultConfig()).Solve(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Solve() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
