package quotepdf

import "github.com/alnah/go-quotepdf/internal/quote"

// Sentinel errors of the render pipeline.
var (
	ErrInvalidInput     = quote.ErrInvalidInput
	ErrTemplateNotFound = quote.ErrTemplateNotFound
	ErrTemplateContract = quote.ErrTemplateContract
	ErrAssetLoad        = quote.ErrAssetLoad
	ErrRenderBackend    = quote.ErrRenderBackend
)

// Typed errors. Each matches its sentinel through errors.Is.
type (
	InvalidInputError     = quote.InvalidInputError
	TemplateNotFoundError = quote.TemplateNotFoundError
	TemplateContractError = quote.TemplateContractError
	AssetLoadError        = quote.AssetLoadError
	RenderBackendError    = quote.RenderBackendError
)
