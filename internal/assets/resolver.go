package assets

import "slices"

// Resolver combines a disk loader and the embedded loader. When a disk
// loader is configured, files are read from disk first and fall back to the
// embedded bundles only when not found there.
type Resolver struct {
	custom   Source // nil if no templates directory configured
	embedded Source
}

// NewResolver creates a Resolver.
// If basePath is empty, only embedded bundles are used.
// Returns error if basePath is set but invalid.
func NewResolver(basePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if basePath != "" {
		fsLoader, err := NewFilesystemLoader(basePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}
	return r, nil
}

// Read loads a bundle file, trying the disk first if available.
func (r *Resolver) Read(dir, name string) ([]byte, error) {
	if r.custom == nil {
		return r.embedded.Read(dir, name)
	}

	content, err := r.custom.Read(dir, name)
	if err == nil {
		return content, nil
	}
	// Only fall back for "not found" errors, not validation or I/O errors.
	if !IsNotFound(err) {
		return nil, err
	}
	return r.embedded.Read(dir, name)
}

// Bundles returns the union of disk and embedded bundle names, sorted.
func (r *Resolver) Bundles() ([]string, error) {
	names, err := r.embedded.Bundles()
	if err != nil {
		return nil, err
	}
	if r.custom != nil {
		disk, err := r.custom.Bundles()
		if err != nil {
			return nil, err
		}
		names = append(names, disk...)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

// HasCustomLoader returns true if a templates directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Source = (*Resolver)(nil)
