// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors for file utility operations.
var (
	ErrNameEmpty         = errors.New("file name cannot be empty")
	ErrNamePathTraversal = errors.New("file name contains path separator or null byte")
)

// WriteAtomic writes a file in dir by streaming into a hidden temporary
// file and renaming it into place, so readers never see a partial file.
// The temporary file is removed when write fails. Returns the final path.
func WriteAtomic(dir, name string, write func(io.Writer) error) (path string, err error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	tmpPath := filepath.Join(dir, "."+name+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) // #nosec G304 -- name validated
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if err = write(f); err != nil {
		_ = f.Close()
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	path = filepath.Join(dir, name)
	if err = os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("renaming temp file: %w", err)
	}
	return path, nil
}

// ValidateName checks that a file name has no directory component.
func ValidateName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}
	if strings.ContainsAny(name, "/\\\x00") || name == "." || name == ".." {
		return ErrNamePathTraversal
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
	return err == nil && info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "quotepdf" -> false (name)
//   - "./quotepdf.yaml" -> true (relative path)
//   - "/etc/quotepdf/prod.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
