package aster

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// fixtureTree builds the synthetic tree used by the walker tests:
//
//	a.md
//	b.txt
//	sub/c.md
//	sub/d/e.md
func fixtureTree(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "d"), 0o755))
	for _, name := range []string{"a.md", "b.txt", "sub/c.md", "sub/d/e.md"} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.WriteFile(path, []byte("fixture"), 0o644))
	}
	return dir
}

// walk collects the cwd-relative slash-separated paths matched by the
// pattern, sorted (directory read order is not guaranteed).
func walk(t testing.TB, pattern, dir string, opts ...WalkOption) []string {
	t.Helper()

	it := NewWalker(New(pattern)).Iterate(append(opts, FromDirectory(dir))...)
	defer it.Close()

	got := []string{}
	for it.Next() {
		rel, err := filepath.Rel(dir, it.Entry().Path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}
	sort.Strings(got)
	return got
}

func TestIteratorBaseline(t *testing.T) {
	dir := fixtureTree(t)

	got := walk(t, "*.md", dir)
	want := []string{"a.md"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("walked paths diff (-got +want):\n%s", diff)
	}
}

func TestIteratorRecursive(t *testing.T) {
	dir := fixtureTree(t)

	got := walk(t, "**/*.md", dir)
	want := []string{"a.md", "sub/c.md", "sub/d/e.md"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("walked paths diff (-got +want):\n%s", diff)
	}
}

func TestIteratorDirectories(t *testing.T) {
	dir := fixtureTree(t)

	got := walk(t, "**/*", dir, MatchDirectories(true))
	want := []string{"a.md", "b.txt", "sub", "sub/c.md", "sub/d", "sub/d/e.md"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("walked paths diff (-got +want):\n%s", diff)
	}
}

func TestIteratorNoFiles(t *testing.T) {
	dir := fixtureTree(t)

	got := walk(t, "**/*", dir, MatchFiles(false), MatchDirectories(true))
	want := []string{"sub", "sub/d"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("walked paths diff (-got +want):\n%s", diff)
	}
}

func TestIteratorHidden(t *testing.T) {
	dir := fixtureTree(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.md"), []byte("fixture"), 0o644))

	got := walk(t, "**/*.md", dir)
	want := []string{"a.md", "sub/c.md", "sub/d/e.md"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("hidden suppressed: walked paths diff (-got +want):\n%s", diff)
	}

	got = walk(t, "**/*.md", dir, MatchHidden(true))
	want = []string{".hidden.md", "a.md", "sub/c.md", "sub/d/e.md"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("hidden emitted: walked paths diff (-got +want):\n%s", diff)
	}
}

func TestIteratorSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := fixtureTree(t)
	require.NoError(t, os.Symlink(filepath.Join(dir, "a.md"), filepath.Join(dir, "link.md")))

	got := walk(t, "*.md", dir)
	want := []string{"a.md"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("symlinks suppressed: walked paths diff (-got +want):\n%s", diff)
	}

	got = walk(t, "*.md", dir, MatchSymlinks(true))
	want = []string{"a.md", "link.md"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("symlinks emitted: walked paths diff (-got +want):\n%s", diff)
	}
}

func TestIteratorEntryTypes(t *testing.T) {
	dir := fixtureTree(t)

	it := NewWalker(New("**/*")).Iterate(FromDirectory(dir), MatchDirectories(true))
	defer it.Close()

	types := map[string]Archetype{}
	for it.Next() {
		entry := it.Entry()
		rel, err := filepath.Rel(dir, entry.Path)
		require.NoError(t, err)
		types[filepath.ToSlash(rel)] = entry.Type
	}

	want := map[string]Archetype{
		"a.md":       Regular,
		"b.txt":      Regular,
		"sub":        Directory,
		"sub/c.md":   Regular,
		"sub/d":      Directory,
		"sub/d/e.md": Regular,
	}
	if diff := cmp.Diff(types, want); diff != "" {
		t.Errorf("entry types diff (-got +want):\n%s", diff)
	}
}

func TestIteratorMissingRoot(t *testing.T) {
	dir := fixtureTree(t)

	var reported []error
	got := walk(t, "**/*", filepath.Join(dir, "missing"),
		WithErrorHandler(func(err error) { reported = append(reported, err) }))

	if diff := cmp.Diff(got, []string{}); diff != "" {
		t.Errorf("walked paths diff (-got +want):\n%s", diff)
	}
	require.Len(t, reported, 1)
	require.ErrorIs(t, reported[0], os.ErrNotExist)
}

func TestIteratorClose(t *testing.T) {
	dir := fixtureTree(t)

	it := NewWalker(New("**/*")).Iterate(FromDirectory(dir))
	require.True(t, it.Next())
	require.NoError(t, it.Close())

	if it.Next() {
		t.Errorf("Next() after Close() = true, want false")
	}
}

func TestIteratorAbsolutePattern(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("drive-letter roots do not start with a separator")
	}
	dir := fixtureTree(t)

	got := walk(t, filepath.ToSlash(dir)+"/**/*.md", dir)
	want := []string{"a.md", "sub/c.md", "sub/d/e.md"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("walked paths diff (-got +want):\n%s", diff)
	}
}
