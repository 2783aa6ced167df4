package utils

import (
	"os"
)

// IsNonEmptyFile reports whether path names an existing regular file with at least one byte.
func IsNonEmptyFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Size() > 0
}
