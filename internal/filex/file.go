// Package filex holds small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureParentDir creates the directory that will hold the file at path.
// A path with no directory part, or a SQLite "file:" URI carrying query
// options, is handled by looking at the file name only.
func EnsureParentDir(path string) error {
	name, _, _ := strings.Cut(strings.TrimPrefix(path, "file:"), "?")
	if name == "" || name == ":memory:" {
		return nil
	}

	dir := filepath.Dir(name)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
