package aster

import "strings"

// flags captures the structural properties derived at compile time.
type flags struct {
	negated  bool // odd count of leading !
	globstar bool // only * and ** segments, at least one **
	absolute bool // starts with a platform separator
	exact    bool // every segment is literal
}

// algorithm is a specialised matcher selected at compile time. The
// glob argument is the pattern prefix with leading ! already removed;
// the caller applies the negation XOR.
type algorithm func(glob, input string) bool

// algoKind names the selected algorithm for introspection.
type algoKind uint8

const (
	algoEmpty algoKind = iota
	algoExact
	algoAny
	algoExtends
	algoGlob
)

func (a algoKind) String() string {
	switch a {
	case algoEmpty:
		return "empty"
	case algoExact:
		return "exact"
	case algoAny:
		return "any"
	case algoExtends:
		return "extends"
	case algoGlob:
		return "glob"
	}
	return "unknown"
}

// compileState tracks the segment splitter's position within the
// prefix buffer.
type compileState struct {
	start  int
	index  int
	slices []Slice
}

// splitSlices cuts the prefix into classified segments. Repeated
// separators collapse; a leading empty segment from an absolute
// pattern is kept so the flag can be derived.
func splitSlices(prefix string) []Slice {
	state := compileState{}
	for state.index < len(prefix) {
		ch := prefix[state.index]
		state.index++
		if isSeparator(ch) {
			state.emplace(prefix)
		}
	}
	state.emplace(prefix)
	return state.slices
}

// emplace cuts the current segment, trims a trailing separator, and
// classifies it.
func (c *compileState) emplace(prefix string) {
	view := prefix[c.start:c.index]
	if view != "" && isSeparator(view[len(view)-1]) {
		view = view[:len(view)-1]
	}
	c.start = c.index

	if len(c.slices) > 0 && view == "" {
		return
	}

	hint := categorize(view)
	if hint == Extends {
		view = view[2:]
	}
	c.slices = append(c.slices, Slice{view: view, hint: hint})
}

// categorize applies the hint rules to one segment.
func categorize(view string) Hint {
	switch view {
	case "*":
		return Wildcard
	case "**":
		return Globstar
	}

	extends := strings.HasPrefix(view, "*.")
	rest := view
	if extends {
		rest = view[2:]
	}

	switch {
	case strings.ContainsAny(rest, "*[{?"):
		return Special
	case extends:
		return Extends
	default:
		return Literal
	}
}

// globstarOnly reports whether every slice is * or ** with at least
// one **.
func globstarOnly(slices []Slice) bool {
	globstar := false
	for _, s := range slices {
		switch s.hint {
		case Wildcard:
		case Globstar:
			globstar = true
		default:
			return false
		}
	}
	return globstar
}

// allLiteral reports whether every slice is an ordinary segment.
func allLiteral(slices []Slice) bool {
	for _, s := range slices {
		if s.hint != Literal {
			return false
		}
	}
	return true
}

// selectAlgorithm picks the specialised matcher for a compiled
// pattern. The extends fast path applies only when the final *.ext
// slice stands alone or follows nothing but * and ** segments with at
// least one **; patterns like */*.md and src/**/*.md take the general
// matcher.
func selectAlgorithm(prefix string, slices []Slice, f flags) (algorithm, algoKind) {
	switch {
	case prefix == "":
		return matchEmpty, algoEmpty
	case f.exact:
		return matchExact, algoExact
	case f.globstar:
		return matchAny, algoAny
	}

	if n := len(slices); n > 0 && slices[n-1].hint == Extends {
		if n == 1 || globstarOnly(slices[:n-1]) {
			return matchExtends, algoExtends
		}
	}
	return matchGlob, algoGlob
}

// compile encodes a glob into its pattern components. Compilation is
// pure and total; malformed patterns compile and simply fail to match.
func compile(glob string) Pattern {
	if glob == "" {
		return Pattern{algorithm: matchEmpty}
	}

	k := 0
	for k < len(glob) && glob[k] == '!' {
		k++
	}
	negated := k%2 == 1

	prefix := glob[k:]
	if prefix == "" {
		return Pattern{
			algorithm: matchEmpty,
			flags:     flags{negated: negated},
		}
	}

	slices := splitSlices(prefix)
	f := flags{
		negated:  negated,
		globstar: globstarOnly(slices),
		absolute: isSeparator(prefix[0]),
		exact:    allLiteral(slices),
	}
	match, kind := selectAlgorithm(prefix, slices, f)

	return Pattern{
		prefix:    prefix,
		slices:    slices,
		algorithm: match,
		kind:      kind,
		flags:     f,
	}
}
