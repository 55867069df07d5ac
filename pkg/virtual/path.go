package virtual

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultRoot derives the virtualized root from the process environment:
// <home>/.claude/plans. The empty string means the home directory could
// not be determined.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".claude", "plans")
}

// classifier decides whether a path falls under the virtualized root.
type classifier struct {
	root string
}

func newClassifier(root string) *classifier {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = filepath.Clean(root)
	}
	return &classifier{root: abs}
}

// isVirtual resolves path against the working directory and tests prefix
// membership. The test is a plain string prefix, not segment-aware: a
// sibling like <root>-archive classifies as virtual. Known limitation.
func (c *classifier) isVirtual(path string) bool {
	if path == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return strings.HasPrefix(abs, c.root)
}

// normalize returns the absolute cleaned form used as the store key.
func (c *classifier) normalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
