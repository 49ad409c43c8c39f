package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrAssetNotFound indicates the requested file does not exist in the bundle.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrBundleNotFound indicates the requested bundle directory does not exist.
	ErrBundleNotFound = errors.New("bundle not found")

	// ErrInvalidAssetName indicates the asset or bundle name contains path
	// separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)

// IsNotFound reports whether err means the file or bundle is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAssetNotFound) || errors.Is(err, ErrBundleNotFound)
}
