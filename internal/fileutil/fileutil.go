// Package fileutil holds the small path and file helpers shared by the
// library, the deck loader and the CLI.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilePermissions is the mode used for files written by the library and CLI.
const FilePermissions = 0o644

// tempPattern names the documents handed to the browser for printing.
const tempPattern = "fastdeck-*.html"

// WriteTempHTML writes doc to a new file in the system temp directory.
// The caller must run cleanup once the file is no longer needed; it is
// also run here when the write fails.
func WriteTempHTML(doc string) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", tempPattern)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	path = f.Name()
	cleanup = func() { _ = os.Remove(path) }

	_, err = f.WriteString(doc)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}
	return path, cleanup, nil
}

// WriteText creates or truncates path and writes content to it.
// Parent directories are not created.
func WriteText(path, content string) error {
	return os.WriteFile(path, []byte(content), FilePermissions) // #nosec G306 -- generated documents are meant to be shared
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// HasExtension reports whether path ends with one of exts.
// Comparison is case-insensitive; exts are given without the leading dot.
func HasExtension(path string, exts ...string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "moon" -> false (name)
//   - "./deck.yaml" -> true (relative path)
//   - "/absolute/deck.yaml" -> true (absolute)
//   - "C:\decks\talk.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string starts with an http or https scheme.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
