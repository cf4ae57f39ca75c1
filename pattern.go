// Package aster compiles shell-style glob patterns into a compact
// encoded form, matches them against paths, and walks directory trees
// filtered by them.
package aster

// Pattern is a compiled glob. It is immutable after construction; the
// slice views reference the pattern's own prefix buffer.
type Pattern struct {
	prefix    string
	slices    []Slice
	algorithm algorithm
	kind      algoKind
	flags     flags
}

// New compiles a glob into a pattern. Compilation is total: malformed
// patterns (unclosed classes or groups, trailing escapes) compile into
// patterns that match nothing.
func New(glob string) *Pattern {
	p := compile(glob)
	return &p
}

// Match reports whether input matches the glob, compiling nothing.
// New(glob).Matches(input) agrees with it except where the pattern
// compiles to the extends algorithm, which tests only the suffix:
// New("*.md").Matches("sub/a.md") is true, Match("*.md", "sub/a.md")
// is false.
func Match(glob, input string) bool {
	return matchGlob(glob, input)
}

// Empty reports whether the pattern has no content.
func (p *Pattern) Empty() bool { return p.prefix == "" }

// Negated reports whether the pattern applies an inverted outcome.
func (p *Pattern) Negated() bool { return p.flags.negated }

// Absolute reports whether the pattern starts with a path separator.
// Absolute patterns match against full paths rather than cwd-relative
// ones.
func (p *Pattern) Absolute() bool { return p.flags.absolute }

// Globstar reports whether the pattern is built solely from * and **
// segments with at least one **; such a pattern matches every input.
func (p *Pattern) Globstar() bool { return p.flags.globstar }

// Exact reports whether every segment is literal.
func (p *Pattern) Exact() bool { return p.flags.exact }

// Recursive reports whether a walk driven by this pattern should
// descend into subdirectories.
func (p *Pattern) Recursive() bool { return len(p.slices) > 1 || p.flags.globstar }

// View returns the stored pattern text, with leading ! removed.
func (p *Pattern) View() string { return p.prefix }

// Slices returns the compiled segments. The returned slice shares the
// pattern's storage and must not be modified.
func (p *Pattern) Slices() []Slice { return p.slices }

// Algorithm names the matching algorithm selected at compile time:
// one of "empty", "exact", "any", "extends" or "glob".
func (p *Pattern) Algorithm() string { return p.kind.String() }

// String returns the pattern text.
func (p *Pattern) String() string { return p.prefix }

// Matches reports whether input matches the pattern, applying the
// negation flag to the selected algorithm's verdict.
func (p *Pattern) Matches(input string) bool {
	return p.flags.negated != p.algorithm(p.prefix, input)
}
