package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
)

//go:embed bundles
var bundles embed.FS

//go:embed terms.yaml
var standardTerms []byte

// EmbeddedLoader reads the bundles compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Read loads bundles/{dir}/{name} from the embedded filesystem.
func (e *EmbeddedLoader) Read(dir, name string) ([]byte, error) {
	if err := ValidateName(dir); err != nil {
		return nil, err
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	content, err := bundles.ReadFile(path.Join("bundles", dir, name))
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	if _, statErr := fs.Stat(bundles, path.Join("bundles", dir)); statErr != nil {
		return nil, fmt.Errorf("%w: %q", ErrBundleNotFound, dir)
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrAssetNotFound, dir, name)
}

// Bundles lists the embedded bundle names.
func (e *EmbeddedLoader) Bundles() ([]string, error) {
	entries, err := fs.ReadDir(bundles, "bundles")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	names := make([]string, 0, len(entries))
	for _, en := range entries {
		if en.IsDir() {
			names = append(names, en.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

// StandardTerms returns the built-in terms and conditions clause set (YAML).
func StandardTerms() []byte {
	return slices.Clone(standardTerms)
}

// Compile-time interface check.
var _ Source = (*EmbeddedLoader)(nil)
