package assets

// Source defines the contract for reading template bundles.
// Implementations may read from embedded files, disk, object storage, etc.
type Source interface {
	// Read returns the content of file name inside bundle dir.
	// Returns ErrAssetNotFound if the file doesn't exist.
	// Returns ErrInvalidAssetName if dir or name contains invalid characters.
	Read(dir, name string) ([]byte, error)

	// Bundles lists the bundle directory names.
	Bundles() ([]string, error)
}
