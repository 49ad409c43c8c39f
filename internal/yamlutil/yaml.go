// Package yamlutil wraps YAML parsing so that configuration, template
// manifests, clause sets and YAML request files share one size limit and
// one error prefix.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func checkSize(data []byte) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return nil
}

// Unmarshal decodes data into v, ignoring unknown fields.
func Unmarshal(data []byte, v any) error {
	if err := checkSize(data); err != nil {
		return err
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := checkSize(data); err != nil {
		return err
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// ToJSON converts a YAML document to its JSON equivalent, so YAML request
// files can go through the same normalization as JSON payloads.
func ToJSON(data []byte) ([]byte, error) {
	if err := checkSize(data); err != nil {
		return nil, err
	}
	out, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
