package main

import (
	"errors"
	"os"

	"github.com/alnah/go-quotepdf"
	"github.com/alnah/go-quotepdf/internal/assets"
	"github.com/alnah/go-quotepdf/internal/config"
	"github.com/alnah/go-quotepdf/internal/logger"
)

// Exit codes for the quotepdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All requests rendered
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, request or template
	ExitIO      = 3 // Unreadable request, unwritable output, missing font
	ExitBackend = 4 // PDF backend failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Output stream failures are I/O, not backend faults.
	var be *quotepdf.RenderBackendError
	if errors.As(err, &be) && be.Op == "write" {
		return ExitIO
	}

	// Backend errors (exit 4)
	if errors.Is(err, quotepdf.ErrRenderBackend) {
		return ExitBackend
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, logger.ErrInvalidConfig) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, quotepdf.ErrInvalidInput) ||
		errors.Is(err, quotepdf.ErrTemplateNotFound) ||
		errors.Is(err, quotepdf.ErrTemplateContract) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadRequest) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, quotepdf.ErrAssetLoad) {
		return ExitIO
	}

	return ExitGeneral
}
