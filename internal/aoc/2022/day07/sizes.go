package aoc2022day07

import "strings"

// DirSize is the recursive size of one directory.
type DirSize struct {
	Name string
	Path string
	Size int64
}

func (t *Tree) totals() []int64 {
	totals := make([]int64, len(t.dirs))
	for id, dir := range t.dirs {
		for _, size := range dir.files {
			totals[id] += size
		}
	}
	// children come after their parent, so a reverse sweep finishes every
	// child before adding it to its parent
	for id := len(t.dirs) - 1; id > int(Root); id-- {
		totals[t.dirs[id].parent] += totals[id]
	}
	return totals
}

// TotalSize is the size of everything in the tree.
func (t *Tree) TotalSize() int64 {
	return t.totals()[Root]
}

// Sizes flattens the tree into one entry per directory: the root first, then
// a depth-first pre-order walk with children in first-listed order.
func (t *Tree) Sizes() []DirSize {
	totals := t.totals()
	paths := make([]string, len(t.dirs))
	sizes := make([]DirSize, 0, len(t.dirs))

	stack := []DirID{Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		dir := t.dirs[id]
		paths[id] = joinPath(paths[dir.parent], dir.name, id == Root)
		sizes = append(sizes, DirSize{Name: dir.name, Path: paths[id], Size: totals[id]})

		for i := len(dir.order) - 1; i >= 0; i-- {
			stack = append(stack, dir.order[i])
		}
	}

	return sizes
}

func joinPath(parent, name string, isRoot bool) string {
	if isRoot {
		return rootDir
	}
	if parent == rootDir {
		return rootDir + name
	}
	return strings.Join([]string{parent, name}, "/")
}
