// Package blendydir encapsulates all path knowledge for the .blendy/ project
// directory. It provides a Dir value object with accessors for the config
// file and the local runtime state directory.
package blendydir

import (
	"os"
	"path/filepath"
)

// Dir is a value object that resolves paths within a .blendy/ directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed; use EnsureStructure to create the
// directory layout.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute path to the .blendy/ directory.
func (d Dir) Root() string { return d.root }

// ConfigPath returns the path to the main config file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// LocalDir returns the path to the local (gitignored) runtime state directory.
func (d Dir) LocalDir() string { return filepath.Join(d.root, "local") }

// HistoryPath returns the path to the creation history journal inside local/.
func (d Dir) HistoryPath() string { return filepath.Join(d.root, "local", "history.jsonl") }

// GitignorePath returns the path to the .gitignore file inside .blendy/.
func (d Dir) GitignorePath() string { return filepath.Join(d.root, ".gitignore") }

// Exists reports whether the .blendy/ root directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}
