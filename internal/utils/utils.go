// Package utils contains general helper functions used across the arbor tool.
package utils

import (
	"path/filepath"
)

const currentDirectoryLabel = "."

// RelativeLabel returns the path from rootPath to fullPath joined with the
// platform separator. It falls back to the cleaned fullPath when no relative
// form exists and returns "." when both resolve to the same entry.
func RelativeLabel(fullPath string, rootPath string) string {
	cleanPath := filepath.Clean(fullPath)
	cleanRoot := filepath.Clean(rootPath)
	if cleanPath == cleanRoot {
		return currentDirectoryLabel
	}
	relativePath, relativePathError := filepath.Rel(cleanRoot, cleanPath)
	if relativePathError != nil {
		return cleanPath
	}
	return relativePath
}
