package aoc2022day07

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

const sampleInput = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func mustTree(t *testing.T, input string) *Tree {
	t.Helper()
	cmds, err := ParseTranscript(input)
	if err != nil {
		t.Fatalf("ParseTranscript() failed: %v", err)
	}
	tree, err := BuildTree(cmds)
	if err != nil {
		t.Fatalf("BuildTree() failed: %v", err)
	}
	return tree
}

func TestSolve(t *testing.T) {
	answer, err := New(DefaultConfig()).Solve(sampleInput)
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if answer.Part1 != "95437" {
		t.Errorf("Part1 = %s, want 95437", answer.Part1)
	}
	if answer.Part2 != "24933642" {
		t.Errorf("Part2 = %s, want 24933642", answer.Part2)
	}
}

func TestSolve_IndentedTranscript(t *testing.T) {
	indented := "    " + strings.ReplaceAll(sampleInput, "\n", "\n    ")

	answer, err := New(DefaultConfig()).Solve(indented)
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if answer.Part1 != "95437" || answer.Part2 != "24933642" {
		t.Errorf("Solve() = %+v", answer)
	}
}

func TestTree_Sizes(t *testing.T) {
	tree := mustTree(t, sampleInput)

	want := []DirSize{
		{Name: "/", Path: "/", Size: 48381165},
		{Name: "a", Path: "/a", Size: 94853},
		{Name: "e", Path: "/a/e", Size: 584},
		{Name: "d", Path: "/d", Size: 24933642},
	}

	got := tree.Sizes()
	if !slices.Equal(got, want) {
		t.Errorf("Sizes() = %+v, want %+v", got, want)
	}
	if tree.TotalSize() != 48381165 {
		t.Errorf("TotalSize() = %d, want 48381165", tree.TotalSize())
	}
}

func TestTree_SizesIdempotent(t *testing.T) {
	tree := mustTree(t, sampleInput)

	first := tree.Sizes()
	second := tree.Sizes()
	if !slices.Equal(first, second) {
		t.Errorf("Sizes() changed between calls: %+v vs %+v", first, second)
	}
}

func TestTree_RootIsSumOfAllFiles(t *testing.T) {
	tree := mustTree(t, sampleInput)

	var sum int64
	for id := 0; id < tree.Len(); id++ {
		for _, size := range tree.Files(DirID(id)) {
			sum += size
		}
	}

	if sum != tree.TotalSize() {
		t.Errorf("sum of files = %d, root size = %d", sum, tree.TotalSize())
	}
}

func TestTree_ParentAtLeastChildren(t *testing.T) {
	tree := mustTree(t, sampleInput)
	totals := tree.totals()

	for id, dir := range tree.dirs {
		for name, size := range dir.files {
			if totals[id] < size {
				t.Errorf("dir %s total %d smaller than file %s (%d)", dir.name, totals[id], name, size)
			}
		}
		for _, child := range dir.order {
			if totals[id] < totals[child] {
				t.Errorf("dir %s total %d smaller than child %s (%d)", dir.name, totals[id], tree.Name(child), totals[child])
			}
		}
	}
}

func TestBuildTree_RelistIsIdempotent(t *testing.T) {
	relisted := sampleInput + `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
`
	once := mustTree(t, sampleInput)
	twice := mustTree(t, relisted)

	if once.Len() != twice.Len() {
		t.Errorf("Len() = %d after relisting, want %d", twice.Len(), once.Len())
	}
	if !slices.Equal(once.Sizes(), twice.Sizes()) {
		t.Errorf("Sizes() = %+v after relisting, want %+v", twice.Sizes(), once.Sizes())
	}
}

func TestBuildTree_DuplicateFileOverwrites(t *testing.T) {
	tree := mustTree(t, "$ cd /\n$ ls\n10 a.txt\n$ ls\n25 a.txt\n")

	if got := tree.TotalSize(); got != 25 {
		t.Errorf("TotalSize() = %d, want 25", got)
	}
}

func TestBuildTree_FilesAttachToCursor(t *testing.T) {
	tree := mustTree(t, "$ cd /\n$ ls\ndir x\n1 top\n$ cd x\n$ ls\n2 inner\n")

	x, ok := tree.Child(Root, "x")
	if !ok {
		t.Fatal("expected child x under root")
	}
	if files := tree.Files(x); len(files) != 1 || files["inner"] != 2 {
		t.Errorf("Files(x) = %v", files)
	}
	if files := tree.Files(Root); len(files) != 1 || files["top"] != 1 {
		t.Errorf("Files(root) = %v", files)
	}
}

func TestBuildTree_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "cd above root",
			input:   "$ cd /\n$ cd ..\n",
			wantErr: ErrCursorUnderflow,
		},
		{
			name:    "cd into unlisted directory",
			input:   "$ cd /\n$ ls\ndir a\n$ cd b\n",
			wantErr: ErrUnknownDirectory,
		},
		{
			name:    "cd before any listing",
			input:   "$ cd a\n",
			wantErr: ErrUnknownDirectory,
		},
		{
			name:    "file listed where a directory exists",
			input:   "$ cd /\n$ ls\ndir a\n10 a\n",
			wantErr: ErrNameConflict,
		},
		{
			name:    "directory listed where a file exists",
			input:   "$ cd /\n$ ls\n10 a\n$ ls\ndir a\n",
			wantErr: ErrNameConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := ParseTranscript(tt.input)
			if err != nil {
				t.Fatalf("ParseTranscript() failed: %v", err)
			}
			if _, err := BuildTree(cmds); !errors.Is(err, tt.wantErr) {
				t.Errorf("BuildTree() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseTranscript(t *testing.T) {
	cmds, err := ParseTranscript("$ cd /\n$ ls\ndir a\n42 b.txt\n$ cd a\n")
	if err != nil {
		t.Fatalf("ParseTranscript() failed: %v", err)
	}

	if len(cmds) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(cmds))
	}
	if cmds[0].Kind != ChangeDir || cmds[0].Name != "/" {
		t.Errorf("cmds[0] = %+v", cmds[0])
	}
	wantEntries := []Entry{{Name: "a", IsDir: true}, {Name: "b.txt", Size: 42}}
	if cmds[1].Kind != List || !slices.Equal(cmds[1].Entries, wantEntries) {
		t.Errorf("cmds[1] = %+v", cmds[1])
	}
	if cmds[2].Kind != ChangeDir || cmds[2].Name != "a" || cmds[2].Line != 5 {
		t.Errorf("cmds[2] = %+v", cmds[2])
	}
}

func TestParseTranscript_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{name: "unknown command", input: "$ cd /\n$ foo\n", wantErr: ErrUnknownCommand, wantLine: 2},
		{name: "size not a number", input: "$ ls\nabc f\n", wantErr: ErrInvalidSize, wantLine: 2},
		{name: "negative size", input: "$ ls\n-5 f\n", wantErr: ErrInvalidSize, wantLine: 2},
		{name: "output before any command", input: "14 f\n", wantErr: ErrMalformedLine, wantLine: 1},
		{name: "output after cd", input: "$ cd /\n14 f\n", wantErr: ErrMalformedLine, wantLine: 2},
		{name: "cd without name", input: "$ cd\n", wantErr: ErrMalformedLine, wantLine: 1},
		{name: "entry with extra field", input: "$ ls\n1 a b\n", wantErr: ErrMalformedLine, wantLine: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTranscript(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseTranscript() error = %v, want %v", err, tt.wantErr)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if parseErr.Line != tt.wantLine {
				t.Errorf("ParseError.Line = %d, want %d", parseErr.Line, tt.wantLine)
			}
		})
	}
}

func TestSolve_UnknownCommandFails(t *testing.T) {
	if _, err := New(DefaultConfig()).Solve("$ cd /\n$ foo\n"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Solve() error = %v, want ErrUnknownCommand", err)
	}
}

func TestSumAtMost(t *testing.T) {
	sizes := mustTree(t, sampleInput).Sizes()

	if got := SumAtMost(sizes, 100000); got != 95437 {
		t.Errorf("SumAtMost(100000) = %d, want 95437", got)
	}
	if got := SumAtMost(sizes, 100); got != 0 {
		t.Errorf("SumAtMost(100) = %d, want 0", got)
	}

	prev := int64(-1)
	for _, threshold := range []int64{0, 584, 1000, 94853, 100000, 24933642, 48381165, 1 << 40} {
		got := SumAtMost(sizes, threshold)
		if got < prev {
			t.Errorf("SumAtMost(%d) = %d decreased from %d", threshold, got, prev)
		}
		prev = got
	}
}

func TestSmallestToFree(t *testing.T) {
	sizes := mustTree(t, sampleInput).Sizes()
	const capacity, required = 70000000, 30000000

	got, err := SmallestToFree(sizes, capacity, required)
	if err != nil {
		t.Fatalf("SmallestToFree() failed: %v", err)
	}
	if got != 24933642 {
		t.Errorf("SmallestToFree() = %d, want 24933642", got)
	}

	deficit := required - (capacity - sizes[0].Size)
	if got < deficit {
		t.Errorf("result %d below deficit %d", got, deficit)
	}

	present := false
	for _, d := range sizes {
		if d.Size == got {
			present = true
		}
		if d.Size >= deficit && d.Size < got {
			t.Errorf("smaller qualifying directory %s (%d) exists", d.Path, d.Size)
		}
	}
	if !present {
		t.Errorf("result %d is not a directory size", got)
	}
}

func TestSmallestToFree_NoCandidate(t *testing.T) {
	tests := []struct {
		name     string
		sizes    []DirSize
		capacity int64
		required int64
	}{
		{name: "empty list", sizes: nil, capacity: 100, required: 10},
		{name: "deficit larger than root", sizes: []DirSize{{Name: "/", Path: "/", Size: 100}}, capacity: 100, required: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SmallestToFree(tt.sizes, tt.capacity, tt.required); !errors.Is(err, ErrNoCandidate) {
				t.Errorf("SmallestToFree() error = %v, want ErrNoCandidate", err)
			}
		})
	}
}
