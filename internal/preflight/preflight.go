// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preflight checks that required files are present before the
// engine narrates any phase. Only existence is checked; no file is opened.
package preflight

import (
	"fmt"
	"os"
)

// MissingFileError reports a required file that does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("required file not found: %s", e.Path)
}

// Exists reports whether path names an existing file or directory. Any stat
// failure, including a permission error, counts as absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CheckFile returns a *MissingFileError when path does not exist.
func CheckFile(path string) error {
	if !Exists(path) {
		return &MissingFileError{Path: path}
	}
	return nil
}

// CheckAll checks every path and returns the missing ones in input order.
func CheckAll(paths ...string) []string {
	var missing []string
	for _, p := range paths {
		if !Exists(p) {
			missing = append(missing, p)
		}
	}
	return missing
}
