// Package quotepdf renders quotation requests to PDF.
//
// # Quick Start
//
// Load the template bundles, create a generator, and render:
//
//	reg, err := quotepdf.LoadTemplates("templates", "default", zerolog.Nop())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gen := quotepdf.NewGenerator(reg)
//
//	req, err := gen.DecodeJSON(body)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := gen.GenerateFile(ctx, req, "public")
//
// # Pipeline
//
//  1. Normalization maps legacy payload shapes onto a Request. Bad fields
//     degrade to defaults and are logged, never rejected.
//  2. The registry resolves the template id case-insensitively, falling
//     back to the default template. Bundles are rescanned on every
//     resolution, so edits on disk apply to the next request.
//  3. The template computes totals with its own default rates and builds a
//     document definition: blocks, styles, images and a footer function.
//  4. The gofpdf backend lays the definition out twice, once to count
//     pages and once to draw footers that know the page total.
//
// # Errors
//
// Failures match one of ErrInvalidInput, ErrTemplateNotFound,
// ErrTemplateContract, ErrAssetLoad or ErrRenderBackend through errors.Is.
// Asset failures are logged and never returned from a render.
//
// # Concurrency
//
// Generator and the template registry are safe for concurrent use. Each
// request is rendered independently.
package quotepdf
