package aoc2022day10

import (
	"errors"
	"os"
	"testing"
)

func readSample(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/sample.txt")
	if err != nil {
		t.Fatalf("Failed to read sample: %v", err)
	}
	return string(data)
}

const wantScreen = `##..##..##..##..##..##..##..##..##..##..
###...###...###...###...###...###...###.
####....####....####....####....####....
#####.....#####.....#####.....#####.....
######......######......######......####
#######.......#######.......#######.....`

func TestSolve(t *testing.T) {
	answer, err := New(DefaultConfig()).Solve(readSample(t))
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if answer.Part1 != "13140" {
		t.Errorf("Part1 = %s, want 13140", answer.Part1)
	}
	if answer.Part2 != wantScreen {
		t.Errorf("Part2 =\n%s\nwant\n%s", answer.Part2, wantScreen)
	}
}

func TestExecute(t *testing.T) {
	program, err := parseProgram("noop\naddx 3\naddx -5\n")
	if err != nil {
		t.Fatalf("parseProgram() failed: %v", err)
	}

	var got []int
	Execute(program, func(cycle, x int) {
		got = append(got, x)
	})

	want := []int{1, 1, 1, 4, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %d cycles, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cycle %d: X = %d, want %d", i+1, got[i], want[i])
		}
	}
}

func TestParseProgram_Errors(t *testing.T) {
	for _, input := range []string{"jmp 3\n", "addx\n", "addx x\n", "noop 1\n"} {
		if _, err := parseProgram(input); !errors.Is(err, ErrInvalidInstruction) {
			t.Errorf("parseProgram(%q) error = %v, want ErrInvalidInstruction", input, err)
		}
	}
}
