package assets

import (
	"fmt"
	"strings"
)

// ValidateName checks that a bundle or file name is safe to join onto a
// base path. Extensions are allowed ("logo.png"); separators, NUL bytes,
// ".." and hidden names are not.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.HasPrefix(name, ".") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
