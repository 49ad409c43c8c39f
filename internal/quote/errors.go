package quote

import (
	"errors"
	"fmt"
)

// Sentinel errors for the render pipeline. Typed errors below match them
// through errors.Is.
var (
	// ErrInvalidInput indicates a request that cannot be interpreted at all.
	// Individual bad fields degrade to defaults instead.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTemplateNotFound indicates an unresolvable template. Requests fall
	// back to the default template; only a missing default is fatal, at startup.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateContract indicates a template bundle that cannot produce a
	// renderer (no layout entry point, unreadable manifest).
	ErrTemplateContract = errors.New("template contract violated")

	// ErrAssetLoad indicates a missing or unreadable logo, badge or font.
	// Rendering proceeds with an empty asset.
	ErrAssetLoad = errors.New("asset load failed")

	// ErrRenderBackend indicates the PDF backend or output stream failed.
	ErrRenderBackend = errors.New("render backend failed")
)

// InvalidInputError reports a request-level input failure.
type InvalidInputError struct {
	Field string
	Err   error
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %v", e.Err)
	}
	return fmt.Sprintf("invalid input: %s: %v", e.Field, e.Err)
}

func (e *InvalidInputError) Unwrap() error        { return e.Err }
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// TemplateNotFoundError names the template id that could not be resolved.
type TemplateNotFoundError struct {
	TemplateID string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.TemplateID)
}

func (e *TemplateNotFoundError) Is(target error) bool { return target == ErrTemplateNotFound }

// TemplateContractError names the template and the contract element it lacks.
type TemplateContractError struct {
	TemplateID string
	Missing    string
	Err        error
}

// TemplateInvalidError is the name used by resolution callers.
type TemplateInvalidError = TemplateContractError

func (e *TemplateContractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("template %q: missing %s: %v", e.TemplateID, e.Missing, e.Err)
	}
	return fmt.Sprintf("template %q: missing %s", e.TemplateID, e.Missing)
}

func (e *TemplateContractError) Unwrap() error        { return e.Err }
func (e *TemplateContractError) Is(target error) bool { return target == ErrTemplateContract }

// AssetLoadError records a failed asset read. It is logged, not returned,
// by the asset loader.
type AssetLoadError struct {
	Dir  string
	Name string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("asset %s/%s: %v", e.Dir, e.Name, e.Err)
}

func (e *AssetLoadError) Unwrap() error        { return e.Err }
func (e *AssetLoadError) Is(target error) bool { return target == ErrAssetLoad }

// RenderBackendError wraps a failure of the PDF backend or its writer.
type RenderBackendError struct {
	Op  string
	Err error
}

func (e *RenderBackendError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *RenderBackendError) Unwrap() error        { return e.Err }
func (e *RenderBackendError) Is(target error) bool { return target == ErrRenderBackend }
