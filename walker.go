package aster

// dynamicPattern matches every entry; it backs walkers and iterators
// constructed without a pattern.
var dynamicPattern = New("**/*")

// Walker binds a compiled pattern to an iteration entry point.
type Walker struct {
	pattern *Pattern
}

// NewWalker constructs a walker over the given pattern. A nil pattern
// walks everything ("**/*").
func NewWalker(pattern *Pattern) Walker {
	if pattern == nil {
		pattern = dynamicPattern
	}
	return Walker{pattern: pattern}
}

// Pattern returns the bound pattern.
func (w Walker) Pattern() *Pattern { return w.pattern }

// Iterate starts an iteration with the given options. The iterator is
// not yet positioned; call Next to reach the first match.
func (w Walker) Iterate(opts ...WalkOption) *Iterator {
	return newIterator(w.pattern, opts)
}

// Walk visits every matching entry with f, stopping at the first
// error. The iteration is fully released on return.
func (w Walker) Walk(f func(Entry) error, opts ...WalkOption) error {
	it := w.Iterate(opts...)
	defer it.Close()

	for it.Next() {
		if err := f(it.Entry()); err != nil {
			return err
		}
	}
	return nil
}
