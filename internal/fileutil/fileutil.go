// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidExtension indicates an argument whose file suffix is not accepted.
var ErrInvalidExtension = errors.New("invalid file extension")

// RequireExtension checks that path ends with one of exts (with the dot,
// matched case-insensitively). The error names the argument and the
// accepted suffixes.
func RequireExtension(arg, path string, exts ...string) error {
	got := strings.ToLower(filepath.Ext(path))
	for _, ext := range exts {
		if got == strings.ToLower(ext) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q must end in %s", ErrInvalidExtension, arg, path, strings.Join(exts, " or "))
}

// HasExtension reports whether path ends with one of exts, case-insensitively.
func HasExtension(path string, exts ...string) bool {
	return RequireExtension("", path, exts...) == nil
}

// WriteFile writes content to path through a temporary file in the same
// directory, so readers never observe a partially written output.
func WriteFile(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".markup-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmpFile.Write(content); err != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./site.tpl" -> true (relative path)
//   - "/absolute/site.tpl" -> true (absolute)
//   - "C:\site.tpl" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
