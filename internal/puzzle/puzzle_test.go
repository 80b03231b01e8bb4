package puzzle

import (
	"errors"
	"slices"
	"testing"

	"github.com/povarna/advent-of-code-2022/internal/models"
)

type stubSolver struct {
	day int
}

func (s stubSolver) Day() int      { return s.day }
func (s stubSolver) Title() string { return "stub" }
func (s stubSolver) Solve(string) (models.Answer, error) {
	return models.Answer{Part1: "1", Part2: "2"}, nil
}

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name    string
		days    []int
		wantErr error
	}{
		{name: "empty", days: nil},
		{name: "distinct days", days: []int{3, 1, 2}},
		{name: "duplicate day", days: []int{1, 1}, wantErr: ErrDuplicateDay},
		{name: "day zero", days: []int{0}, wantErr: ErrInvalidDay},
		{name: "day after christmas", days: []int{26}, wantErr: ErrInvalidDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var solvers []Solver
			for _, d := range tt.days {
				solvers = append(solvers, stubSolver{day: d})
			}

			_, err := NewRegistry(solvers...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewRegistry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	r, err := NewRegistry(stubSolver{day: 7})
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}

	s, err := r.Get(7)
	if err != nil {
		t.Fatalf("Get(7) failed: %v", err)
	}
	if s.Day() != 7 {
		t.Errorf("Get(7).Day() = %d", s.Day())
	}

	if _, err := r.Get(8); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("Get(8) error = %v, want ErrUnknownDay", err)
	}
}

func TestRegistry_Days(t *testing.T) {
	r, err := NewRegistry(stubSolver{day: 10}, stubSolver{day: 2}, stubSolver{day: 5})
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}

	got := r.Days()
	want := []int{2, 5, 10}
	if !slices.Equal(got, want) {
		t.Errorf("Days() = %v, want %v", got, want)
	}
}
