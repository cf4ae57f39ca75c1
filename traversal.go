package aster

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// traversal enumerates a single directory, classifying each entry and
// joining its name onto the directory prefix. The handle is owned
// exclusively by the traversal and released at end-of-stream or on
// release, whichever comes first.
type traversal struct {
	current Entry
	dir     *os.File
	prefix  string
	report  func(error)
}

// openTraversal acquires a directory handle at prefix. Failures are
// reported and leave the traversal already done, so the walk skips the
// subtree.
func openTraversal(prefix string, report func(error)) *traversal {
	t := &traversal{prefix: prefix, report: report}

	dir, err := os.Open(prefix)
	if err != nil {
		t.fail(errors.Wrapf(err, "opening directory %q", prefix))
		return t
	}
	t.dir = dir
	return t
}

// done reports whether the handle is invalid or exhausted.
func (t *traversal) done() bool { return t.dir == nil }

// advance reads the next directory entry. At end-of-stream the handle
// is released and an empty entry returned.
func (t *traversal) advance() Entry {
	if t.dir == nil {
		return t.current
	}

	ents, err := t.dir.ReadDir(1)
	if err != nil || len(ents) == 0 {
		if err != nil && err != io.EOF {
			t.fail(errors.Wrapf(err, "reading directory %q", t.prefix))
		}
		t.release()
		t.current = Entry{}
		return t.current
	}

	ent := ents[0]
	t.current = Entry{
		Path: joinPath(t.prefix, ent.Name()),
		Type: archetype(ent.Type()),
	}
	return t.current
}

// release closes the directory handle. Safe to call repeatedly.
func (t *traversal) release() {
	if t.dir == nil {
		return
	}
	t.dir.Close()
	t.dir = nil
}

func (t *traversal) fail(err error) {
	if t.report != nil {
		t.report(err)
	}
}
