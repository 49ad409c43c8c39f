// Package assets reads template bundles: manifests, clause sets, logos and
// badges.
//
// # Source Architecture
//
// The package implements a layered loading system:
//
//	Source (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in bundles compiled into the binary
//	    ├── FilesystemLoader  - bundles in a templates directory on disk
//	    └── Resolver          - combines both with disk-first fallback
//
// EmbeddedLoader carries the default bundle and the standard terms, so the
// default template always exists even without a templates directory.
//
// FilesystemLoader reads bundles from disk on every call, with path
// traversal protection and symlink resolution. Edits are visible on the
// next read, which is what the template registry relies on for hot reload.
//
// Resolver is the Source used by the registry. It tries the disk first,
// falling back to embedded files only when the file is not found.
//
// # Directory Structure
//
//	{basePath}/
//	└── {bundle}/
//	    ├── template.yaml     # manifest: layout, rates, company, labels
//	    ├── terms.yaml        # optional clause set
//	    └── logo.png          # images named by the manifest
//
// # Missing Assets
//
// Load and Image never fail. A missing image degrades to an empty asset
// and a warning is logged, so a document still renders without its logo.
package assets
