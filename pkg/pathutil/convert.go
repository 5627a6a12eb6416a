// Package pathutil provides utilities for converting between absolute and
// project-relative paths.
//
// Architecture Pattern:
// The code-intelligence server addresses files by project-relative paths,
// while users may pass either form on the command line. This package provides
// the conversion layer between the two representations.
package pathutil

import (
	"path/filepath"
	"strings"
)

// ToRelative converts an absolute path to relative based on a root directory.
// Falls back to the original path if conversion fails or the path is already
// relative.
//
// Examples:
//   - ToRelative("/home/user/project/src/main.py", "/home/user/project") → "src/main.py"
//   - ToRelative("/other/location/file.py", "/home/user/project") → "/other/location/file.py" (outside root)
//   - ToRelative("src/main.py", "/home/user/project") → "src/main.py" (already relative)
func ToRelative(absPath, rootDir string) string {
	if absPath == "" || rootDir == "" {
		return absPath
	}

	if !filepath.IsAbs(absPath) {
		return absPath
	}

	absPath = filepath.Clean(absPath)
	rootDir = filepath.Clean(rootDir)

	relPath, err := filepath.Rel(rootDir, absPath)
	if err != nil {
		return absPath
	}

	// A path outside the root is clearer in absolute form.
	if strings.HasPrefix(relPath, "..") {
		return absPath
	}

	return relPath
}
