package aster

import (
	"path/filepath"
	"strings"
)

// walkConfig collects the walk options. Defaults: regular files only,
// hidden entries suppressed, starting at the working directory.
type walkConfig struct {
	files       bool
	hidden      bool
	symlinks    bool
	directories bool
	cwd         string
	onError     func(error)
}

// WalkOption functions optionally alter how a walk operates.
type WalkOption = func(*walkConfig)

// MatchFiles enables or disables emitting regular files. Enabled by
// default.
func MatchFiles(enable bool) WalkOption {
	return func(cfg *walkConfig) {
		cfg.files = enable
	}
}

// MatchHidden enables emitting entries whose base name begins with a
// dot. Disabled by default. Hidden directories are still descended.
func MatchHidden(enable bool) WalkOption {
	return func(cfg *walkConfig) {
		cfg.hidden = enable
	}
}

// MatchSymlinks enables emitting symlinks. Disabled by default.
// Symlinks are classified, never followed.
func MatchSymlinks(enable bool) WalkOption {
	return func(cfg *walkConfig) {
		cfg.symlinks = enable
	}
}

// MatchDirectories enables emitting directories. Disabled by default.
func MatchDirectories(enable bool) WalkOption {
	return func(cfg *walkConfig) {
		cfg.directories = enable
	}
}

// FromDirectory sets the starting directory. Defaults to the working
// directory at the time the iterator is constructed. Relative patterns
// match against the portion of each path below this directory.
func FromDirectory(dir string) WalkOption {
	return func(cfg *walkConfig) {
		cfg.cwd = dir
	}
}

// WithErrorHandler receives traversal failures (unopenable or
// unreadable directories). The affected subtree is skipped either way;
// by default failures are discarded.
func WithErrorHandler(f func(error)) WalkOption {
	return func(cfg *walkConfig) {
		cfg.onError = f
	}
}

// Iterator streams the entries of a directory tree that pass both the
// type gates and the bound pattern. It is single-threaded; sharing one
// iterator across goroutines is undefined.
type Iterator struct {
	cfg     walkConfig
	pattern *Pattern
	pending []string
	trav    *traversal
	current Entry
}

func newIterator(pattern *Pattern, opts []WalkOption) *Iterator {
	cfg := walkConfig{files: true}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if cfg.cwd == "" {
		cfg.cwd = workingDir()
	}

	return &Iterator{
		cfg:     cfg,
		pattern: pattern,
		pending: []string{cfg.cwd},
	}
}

// Next advances to the next matching entry, reporting whether one was
// found. Once it returns false the iteration is complete and every
// directory handle has been released.
func (it *Iterator) Next() bool {
	for {
		if it.trav == nil {
			n := len(it.pending) - 1
			if n < 0 {
				return false
			}
			dir := it.pending[n]
			it.pending = it.pending[:n]
			it.trav = openTraversal(dir, it.cfg.onError)
		}

		for !it.trav.done() {
			entry := it.trav.advance()
			if entry.Path != "" && it.test(entry) {
				it.current = entry
				return true
			}
		}
		it.trav = nil
	}
}

// Entry returns the entry the iterator is positioned on.
func (it *Iterator) Entry() Entry { return it.current }

// Close releases the active directory handle and discards any pending
// directories. Exhausted iterators are already closed.
func (it *Iterator) Close() error {
	if it.trav != nil {
		it.trav.release()
		it.trav = nil
	}
	it.pending = nil
	return nil
}

// test applies the recursion decision and the emission gates to one
// entry.
func (it *Iterator) test(entry Entry) bool {
	switch entry.Type {
	case Regular:
		return it.cfg.files && it.visible(entry.Path) && it.match(entry.Path)

	case Symlink:
		return it.cfg.symlinks && it.visible(entry.Path) && it.match(entry.Path)

	case Directory:
		if it.pattern.Recursive() {
			it.pending = append(it.pending, entry.Path)
		}
		return it.cfg.directories && it.visible(entry.Path) && it.match(entry.Path)
	}
	return false
}

// visible applies the hidden gate to the entry's base name.
func (it *Iterator) visible(path string) bool {
	return it.cfg.hidden || !strings.HasPrefix(filepath.Base(path), ".")
}

// match derives the candidate input: relative patterns see the path
// below the starting directory, absolute patterns the full path.
func (it *Iterator) match(path string) bool {
	if !it.pattern.Absolute() {
		if n := len(it.cfg.cwd) + 1; n <= len(path) {
			path = path[n:]
		}
	}
	return it.pattern.Matches(path)
}
