package input

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileSource_Fetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day07.txt")
	if err := os.WriteFile(path, []byte("$ cd /\n$ ls\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewFileSource(path)
	got, err := src.Fetch(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "$ cd /\n$ ls\n" {
		t.Errorf("got %q", got)
	}
}

func TestFileSource_Stdin(t *testing.T) {
	src := &FileSource{Path: "-", Reader: strings.NewReader("1000\n2000\n")}

	got, err := src.Fetch(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1000\n2000\n" {
		t.Errorf("got %q", got)
	}
}

func TestFileSource_Errors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.txt"), wantErr: os.ErrNotExist},
		{name: "empty file", path: empty, wantErr: ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileSource(tt.path).Fetch(context.Background(), 1)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestFileSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&FileSource{Path: "-", Reader: strings.NewReader("x")}).Fetch(ctx, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
