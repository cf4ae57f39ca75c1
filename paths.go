package aster

import (
	"os"
	"path/filepath"
)

// isSeparator reports whether c separates path segments on this
// platform. Forward slash always does; backslash only where it is the
// platform separator.
func isSeparator(c byte) bool {
	return c == '/' || (filepath.Separator == '\\' && c == '\\')
}

// indexSeparator returns the index of the first separator in s at or
// after from, or -1.
func indexSeparator(s string, from int) int {
	for i := from; i < len(s); i++ {
		if isSeparator(s[i]) {
			return i
		}
	}
	return -1
}

// joinPath joins a directory entry name onto its parent directory.
func joinPath(prefix, suffix string) string {
	return filepath.Join(prefix, suffix)
}

// workingDir returns the process working directory, or "." when it
// cannot be determined.
func workingDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
