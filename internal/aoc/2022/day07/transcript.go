package aoc2022day07

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	commandMarker = "$"
	dirMarker     = "dir"
	parentDir     = ".."
	rootDir       = "/"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMalformedLine  = errors.New("malformed line")
	ErrInvalidSize    = errors.New("invalid file size")
)

// ParseError points at the transcript line that could not be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type CommandKind int

const (
	ChangeDir CommandKind = iota
	List
)

// Entry is one line of ls output: either a directory or a file with a size.
type Entry struct {
	Name  string
	IsDir bool
	Size  int64
}

// Command is either a cd (Name set) or an ls (Entries set).
// Line is the transcript line the command started on.
type Command struct {
	Kind    CommandKind
	Name    string
	Entries []Entry
	Line    int
}

// ParseTranscript splits a shell transcript into commands, keeping their order.
// Blank lines are skipped and every line is trimmed, so indented fixtures parse.
func ParseTranscript(text string) ([]Command, error) {
	var cmds []Command

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, commandMarker) {
			cmd, err := parseCommand(strings.TrimPrefix(line, commandMarker), lineNo)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: err}
			}
			cmds = append(cmds, cmd)
			continue
		}

		// output line: only valid inside an ls block
		if len(cmds) == 0 || cmds[len(cmds)-1].Kind != List {
			return nil, &ParseError{Line: lineNo, Text: line, Err: ErrMalformedLine}
		}

		entry, err := parseEntry(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		last := &cmds[len(cmds)-1]
		last.Entries = append(last.Entries, entry)
	}

	return cmds, nil
}

func parseCommand(s string, lineNo int) (Command, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Command{}, ErrMalformedLine
	}

	switch fields[0] {
	case "cd":
		if len(fields) != 2 {
			return Command{}, ErrMalformedLine
		}
		return Command{Kind: ChangeDir, Name: fields[1], Line: lineNo}, nil
	case "ls":
		if len(fields) != 1 {
			return Command{}, ErrMalformedLine
		}
		return Command{Kind: List, Line: lineNo}, nil
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}
}

func parseEntry(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Entry{}, ErrMalformedLine
	}

	if fields[0] == dirMarker {
		return Entry{Name: fields[1], IsDir: true}, nil
	}

	size, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || size < 0 {
		return Entry{}, fmt.Errorf("%w: %s", ErrInvalidSize, fields[0])
	}
	return Entry{Name: fields[1], Size: size}, nil
}
