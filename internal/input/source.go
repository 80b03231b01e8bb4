package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

//go:generate mockgen -destination=mocks/mock_input.go -package=mocks . Source,Cache

// Source supplies the raw puzzle input for a day.
type Source interface {
	Fetch(ctx context.Context, day int) (string, error)
}

var ErrEmptyInput = errors.New("empty puzzle input")

const stdinPath = "-"

// FileSource reads the same file whatever the day; "-" reads Reader
// (stdin unless set).
type FileSource struct {
	Path   string
	Reader io.Reader
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path, Reader: os.Stdin}
}

func (s *FileSource) Fetch(ctx context.Context, day int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var data []byte
	var err error
	if s.Path == stdinPath {
		data, err = io.ReadAll(s.Reader)
	} else {
		data, err = os.ReadFile(s.Path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input for day %d: %w", day, err)
	}

	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyInput, s.Path)
	}
	return string(data), nil
}
