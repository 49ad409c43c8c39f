package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FilesystemLoader reads bundles from a directory on the filesystem.
// Every call goes to disk.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks in base path so containment checks compare real paths.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}
	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// BasePath returns the resolved templates directory.
func (f *FilesystemLoader) BasePath() string { return f.basePath }

// Read loads {basePath}/{dir}/{name}.
func (f *FilesystemLoader) Read(dir, name string) ([]byte, error) {
	if err := ValidateName(dir); err != nil {
		return nil, err
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	dirPath := filepath.Join(f.basePath, dir)
	if err := f.verifyPathContainment(dirPath); err != nil {
		return nil, err
	}
	if info, err := os.Stat(dirPath); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrBundleNotFound, dir)
	}

	filePath := filepath.Join(dirPath, name)
	if err := f.verifyPathContainment(filePath); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrAssetNotFound, dir, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return content, nil
}

// Bundles lists the subdirectories of basePath, sorted. Hidden directories
// are skipped.
func (f *FilesystemLoader) Bundles() ([]string, error) {
	entries, err := os.ReadDir(f.basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if e.IsDir() {
			names = append(names, e.Name())
			continue
		}
		// Follow symlinked bundles.
		if e.Type()&os.ModeSymlink != 0 {
			p := filepath.Join(f.basePath, e.Name())
			if info, err := os.Stat(p); err == nil && info.IsDir() && f.verifyPathContainment(p) == nil {
				names = append(names, e.Name())
			}
		}
	}
	slices.Sort(names)
	return names, nil
}

// verifyPathContainment ensures the resolved path is within basePath.
// Resolves symlinks to prevent escape via a link pointing outside basePath.
func (f *FilesystemLoader) verifyPathContainment(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// A path that does not exist yet keeps its lexical form; opening it
	// fails later and the prefix check still applies.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	// Separator suffix prevents /base/path matching /base/pathevil.
	if !strings.HasPrefix(absPath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}
	return nil
}

// Compile-time interface check.
var _ Source = (*FilesystemLoader)(nil)
