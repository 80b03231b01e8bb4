package puzzle

import (
	"errors"
	"fmt"
	"slices"

	"github.com/povarna/advent-of-code-2022/internal/models"
)

// Solver is implemented by every day. Solve must be pure: the same input
// always yields the same answer and nothing is shared between calls.
type Solver interface {
	Day() int
	Title() string
	Solve(input string) (models.Answer, error)
}

var (
	ErrUnknownDay   = errors.New("unknown day")
	ErrDuplicateDay = errors.New("duplicate day")
	ErrInvalidDay   = errors.New("day out of range")
)

const (
	FirstDay = 1
	LastDay  = 25
)

type Registry struct {
	solvers map[int]Solver
}

func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}

	for _, s := range solvers {
		day := s.Day()
		if day < FirstDay || day > LastDay {
			return nil, fmt.Errorf("%w: %d", ErrInvalidDay, day)
		}
		if _, exists := r.solvers[day]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateDay, day)
		}
		r.solvers[day] = s
	}

	return r, nil
}

func (r *Registry) Get(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for day := range r.solvers {
		days = append(days, day)
	}
	slices.Sort(days)
	return days
}
