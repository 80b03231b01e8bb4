package aoc2022day07

import (
	"errors"
	"fmt"
)

var (
	ErrCursorUnderflow  = errors.New("cd .. above root")
	ErrUnknownDirectory = errors.New("cd into directory that was never listed")
	ErrNameConflict     = errors.New("file and directory share a name")
)

// DirID is a handle into the tree's directory arena.
type DirID int

// Root is always the first directory in the arena.
const Root DirID = 0

type directory struct {
	name     string
	parent   DirID
	children map[string]DirID
	order    []DirID // children in first-listed order
	files    map[string]int64
}

// Tree is an arena of directories. A child is always allocated after its
// parent, so every child handle is greater than its parent's.
type Tree struct {
	dirs []directory
}

func NewTree() *Tree {
	t := &Tree{}
	t.newDir(rootDir, Root)
	return t
}

func (t *Tree) newDir(name string, parent DirID) DirID {
	id := DirID(len(t.dirs))
	t.dirs = append(t.dirs, directory{
		name:     name,
		parent:   parent,
		children: make(map[string]DirID),
		files:    make(map[string]int64),
	})
	return id
}

// Len returns the number of directories, root included.
func (t *Tree) Len() int {
	return len(t.dirs)
}

func (t *Tree) Name(id DirID) string {
	return t.dirs[id].name
}

// Child looks up a subdirectory of id by name.
func (t *Tree) Child(id DirID, name string) (DirID, bool) {
	child, ok := t.dirs[id].children[name]
	return child, ok
}

// Files returns a copy of the files directly inside id.
func (t *Tree) Files(id DirID) map[string]int64 {
	files := make(map[string]int64, len(t.dirs[id].files))
	for name, size := range t.dirs[id].files {
		files[name] = size
	}
	return files
}

// addEntry records one ls line under id. Names are unique across files and
// subdirectories of the same directory.
func (t *Tree) addEntry(id DirID, e Entry) error {
	dir := &t.dirs[id]
	if !e.IsDir {
		if _, exists := dir.children[e.Name]; exists {
			return fmt.Errorf("%w: %s", ErrNameConflict, e.Name)
		}
		dir.files[e.Name] = e.Size
		return nil
	}
	if _, exists := dir.files[e.Name]; exists {
		return fmt.Errorf("%w: %s", ErrNameConflict, e.Name)
	}
	if _, exists := dir.children[e.Name]; exists {
		return nil
	}
	child := t.newDir(e.Name, id)
	// newDir may have grown the arena; re-index instead of reusing dir
	t.dirs[id].children[e.Name] = child
	t.dirs[id].order = append(t.dirs[id].order, child)
	return nil
}

// BuildTree replays commands against a cursor that starts at the root.
func BuildTree(cmds []Command) (*Tree, error) {
	t := NewTree()
	cursor := []DirID{Root}

	for _, cmd := range cmds {
		cwd := cursor[len(cursor)-1]

		switch cmd.Kind {
		case ChangeDir:
			switch cmd.Name {
			case rootDir:
				cursor = cursor[:1]
			case parentDir:
				if len(cursor) == 1 {
					return nil, fmt.Errorf("line %d: %w", cmd.Line, ErrCursorUnderflow)
				}
				cursor = cursor[:len(cursor)-1]
			default:
				child, ok := t.Child(cwd, cmd.Name)
				if !ok {
					return nil, fmt.Errorf("line %d: %w: %s", cmd.Line, ErrUnknownDirectory, cmd.Name)
				}
				cursor = append(cursor, child)
			}
		case List:
			for _, e := range cmd.Entries {
				if err := t.addEntry(cwd, e); err != nil {
					return nil, fmt.Errorf("line %d: %w", cmd.Line, err)
				}
			}
		}
	}

	return t, nil
}
