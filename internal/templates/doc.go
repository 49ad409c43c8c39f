// Package templates turns a canonical quotation request into a document
// definition.
//
// A template is a bundle directory holding a template.yaml manifest and its
// assets (logos, badges, an optional clause file). The manifest selects one
// of the compiled layouts (classic, vig, agema) and supplies the data that
// differs per company: identity, default rates, captions, remarks and image
// file names. Bundles can be edited on disk while the process runs; see
// internal/registry for how edits are picked up.
//
// Renderers never mutate the request and never fail because of a missing
// asset: every image key a layout references is present in the document,
// possibly as an empty asset.
package templates
