package tree

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/keshon/snapfs/internal/fs"
	"github.com/keshon/snapfs/internal/pathspec"
)

// newTestTree builds the example tree: a/1.txt ("x"), a/2.txt ("y") and an
// empty directory b.
func newTestTree(t *testing.T) *fs.MemoryFS {
	t.Helper()
	mem := fs.NewMemoryFS()
	if err := mem.MkdirAll("root/a", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := mem.MkdirAll("root/b", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := mem.WriteFile("root/a/1.txt", []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := mem.WriteFile("root/a/2.txt", []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}
	return mem
}

func resolve(t *testing.T, r *Resolver, include, exclude []string, b pathspec.MatchErrorBehavior) ([]PathStat, error) {
	t.Helper()
	req := pathspec.Request{
		Spec: pathspec.New(include, exclude, b),
		Root: "root",
	}
	return r.Resolve(context.Background(), req)
}

func paths(stats []PathStat) []string {
	out := make([]string, 0, len(stats))
	for _, s := range stats {
		out = append(out, s.Path)
	}
	return out
}

func TestResolveIncludesFilesAndDirs(t *testing.T) {
	r := NewResolver(newTestTree(t))

	stats, err := resolve(t, r, []string{"a/*.txt", "b/**"}, nil, pathspec.BehaviorIgnore)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := []string{"a/1.txt", "a/2.txt", "b"}
	if !reflect.DeepEqual(paths(stats), want) {
		t.Fatalf("resolved paths = %v, want %v", paths(stats), want)
	}

	if stats[0].Kind != KindFile || stats[1].Kind != KindFile {
		t.Errorf("txt entries should be files: %v %v", stats[0].Kind, stats[1].Kind)
	}
	if stats[2].Kind != KindDir {
		t.Errorf("b should be a directory, got %v", stats[2].Kind)
	}
	if stats[0].Size != 1 || stats[1].Size != 1 {
		t.Errorf("file sizes should be 1 byte each: %d %d", stats[0].Size, stats[1].Size)
	}
}

func TestResolveDeterministic(t *testing.T) {
	r := NewResolver(newTestTree(t))

	first, err := resolve(t, r, []string{"**"}, nil, pathspec.BehaviorIgnore)
	if err != nil {
		t.Fatal(err)
	}
	second, err := resolve(t, r, []string{"**"}, nil, pathspec.BehaviorIgnore)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two resolutions differ:\n%v\n%v", first, second)
	}
}

func TestResolveExcludeSubtraction(t *testing.T) {
	r := NewResolver(newTestTree(t))

	stats, err := resolve(t, r, []string{"a/*.txt"}, []string{"a/2.txt"}, pathspec.BehaviorIgnore)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a/1.txt"}
	if !reflect.DeepEqual(paths(stats), want) {
		t.Errorf("resolved paths = %v, want %v", paths(stats), want)
	}

	// excluding everything the include matched is not an error
	stats, err = resolve(t, r, []string{"a/*.txt"}, []string{"a/**"}, pathspec.BehaviorError)
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 0 {
		t.Errorf("expected empty result, got %v", paths(stats))
	}
}

func TestResolveZeroMatchPolicies(t *testing.T) {
	mem := newTestTree(t)

	// Ignore: silent success
	r := NewResolver(mem)
	stats, err := resolve(t, r, []string{"nope/**"}, nil, pathspec.BehaviorIgnore)
	if err != nil {
		t.Fatalf("ignore policy should not fail: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("expected no matches, got %v", paths(stats))
	}

	// Warn: success plus a diagnostic on the logger
	var buf bytes.Buffer
	r = &Resolver{FS: mem, Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	if _, err := resolve(t, r, []string{"nope/**"}, nil, pathspec.BehaviorWarn); err != nil {
		t.Fatalf("warn policy should not fail: %v", err)
	}
	if !strings.Contains(buf.String(), "nope/**") {
		t.Errorf("warn diagnostic should name the pattern, got %q", buf.String())
	}

	// Error: fails with a MatchError naming pattern and root
	r = NewResolver(mem)
	_, err = resolve(t, r, []string{"nope/**"}, nil, pathspec.BehaviorError)
	var matchErr *pathspec.MatchError
	if !errors.As(err, &matchErr) {
		t.Fatalf("expected MatchError, got %T: %v", err, err)
	}
	if matchErr.Pattern != "nope/**" || matchErr.Root != "root" {
		t.Errorf("MatchError context wrong: %+v", matchErr)
	}
}

func TestResolveMissingRoot(t *testing.T) {
	r := NewResolver(fs.NewMemoryFS())

	req := pathspec.Request{
		Spec: pathspec.New([]string{"**"}, nil, pathspec.BehaviorIgnore),
		Root: "does-not-exist",
	}
	_, err := r.Resolve(context.Background(), req)
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	var matchErr *pathspec.MatchError
	if errors.As(err, &matchErr) {
		t.Errorf("filesystem failure must not surface as MatchError: %v", err)
	}
}

// infoFailFS serves directory entries whose Info call fails, modeling a
// file that disappears between the ReadDir and the stat.
type infoFailFS struct {
	*fs.MemoryFS
}

type infoFailEntry struct {
	os.DirEntry
}

func (infoFailEntry) Info() (os.FileInfo, error) {
	return nil, errors.New("entry went away")
}

func (f infoFailFS) ReadDir(p string) ([]os.DirEntry, error) {
	entries, err := f.MemoryFS.ReadDir(p)
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		if !e.IsDir() {
			entries[i] = infoFailEntry{e}
		}
	}
	return entries, nil
}

func TestResolveStatFailure(t *testing.T) {
	r := NewResolver(infoFailFS{newTestTree(t)})

	stats, err := resolve(t, r, []string{"a/*.txt"}, nil, pathspec.BehaviorIgnore)
	if err == nil {
		t.Fatalf("expected stat failure to surface, resolved %v", paths(stats))
	}
	if !strings.Contains(err.Error(), "stat") {
		t.Errorf("error should describe the stat failure: %v", err)
	}
	var matchErr *pathspec.MatchError
	if errors.As(err, &matchErr) {
		t.Errorf("stat failure must not surface as MatchError: %v", err)
	}
	if stats != nil {
		t.Error("failed resolution must not return partial results")
	}
}

func TestResolveCancelled(t *testing.T) {
	r := NewResolver(newTestTree(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := pathspec.Request{
		Spec: pathspec.New([]string{"**"}, nil, pathspec.BehaviorIgnore),
		Root: "root",
	}
	stats, err := r.Resolve(ctx, req)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if stats != nil {
		t.Error("cancelled resolution must not return partial results")
	}
}
