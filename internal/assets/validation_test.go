package assets

import (
	"errors"
	"testing"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// Valid names
		{"bundle name", "AGEMA", nil},
		{"file with extension", "logo.png", nil},
		{"hyphenated file", "bizsafe3-logo.png", nil},
		{"underscore", "my_bundle", nil},

		// Invalid names
		{"empty name", "", ErrInvalidAssetName},
		{"forward slash", "path/to/logo.png", ErrInvalidAssetName},
		{"backslash", "path\\logo.png", ErrInvalidAssetName},
		{"parent directory", "..", ErrInvalidAssetName},
		{"double dot inside", "logo..png", ErrInvalidAssetName},
		{"hidden file", ".env", ErrInvalidAssetName},
		{"null byte", "logo\x00.png", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateName(%q) error = %v, want nil", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
