// Package project locates the Go module the motion CLI is run from.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// Info describes the enclosing Go module.
type Info struct {
	Root       string
	ModulePath string
	Name       string
	// Invalid is set when the module path fails module.CheckPath.
	Invalid error
}

// FindRoot walks up from start to find go.mod.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// Load reads the module at root.
func Load(root string) (*Info, error) {
	path, err := ModulePath(root)
	if err != nil {
		return nil, err
	}
	return &Info{
		Root:       root,
		ModulePath: path,
		Name:       Name(path, root),
		Invalid:    module.CheckPath(path),
	}, nil
}

// ModulePath returns the module path declared in root/go.mod.
func ModulePath(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// Name returns the last element of the module path, ignoring a major
// version suffix, or the base of dir when the path cannot be split.
func Name(modulePath, dir string) string {
	base := filepath.Base(dir)
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
		parts := strings.Split(prefix, "/")
		if last := parts[len(parts)-1]; last != "" {
			base = last
		}
	}
	return base
}
