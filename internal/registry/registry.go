// Package registry maps template ids to renderers.
//
// The registry rescans the bundle source on every resolution, so template
// edits on disk take effect on the next request without a restart. Each
// manifest is fingerprinted; an unchanged manifest keeps its renderer
// instance, an edited one gets a fresh renderer. Lookup is
// case-insensitive and unknown ids fall back to the default template.
package registry

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alnah/go-quotepdf/internal/assets"
	"github.com/alnah/go-quotepdf/internal/hints"
	"github.com/alnah/go-quotepdf/internal/quote"
	"github.com/alnah/go-quotepdf/internal/templates"
)

// Registry resolves template ids to renderers. It is safe for concurrent
// use.
type Registry struct {
	src       assets.Source
	log       zerolog.Logger
	defaultID string

	mu      sync.RWMutex
	entries map[string]*entry // keyed by lower-case id
	def     *entry            // last good default
	clashes map[string]string // shadowed bundle name -> name that kept the key
}

// entry is one scanned bundle. A broken bundle keeps its error so that
// resolving it reports the contract violation.
type entry struct {
	id       string
	digest   [sha256.Size]byte
	renderer templates.Renderer
	err      error
}

// Info describes a scanned bundle for listings.
type Info struct {
	ID       string
	Layout   string
	Defaults templates.Rates
	Default  bool
	Err      error
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for reload diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// WithDefault sets the fallback template id (default "default").
func WithDefault(id string) Option {
	return func(r *Registry) {
		if id != "" {
			r.defaultID = id
		}
	}
}

// New scans src and returns a registry. It fails when the default template
// cannot be loaded.
func New(src assets.Source, opts ...Option) (*Registry, error) {
	r := &Registry{
		src:       src,
		log:       zerolog.Nop(),
		defaultID: quote.DefaultTemplateID,
		entries:   map[string]*entry{},
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.Reload(); err != nil {
		r.log.Warn().Err(err).Msg("some templates failed to load")
	}
	if r.def == nil {
		err := error(&quote.TemplateNotFoundError{TemplateID: r.defaultID})
		if e, ok := r.lookup(r.defaultID); ok && e.err != nil {
			err = errors.Join(err, e.err)
		}
		return nil, fmt.Errorf("loading default template: %w%s", err, hints.ForDefaultTemplate(r.defaultID))
	}
	return r, nil
}

// Reload rescans every bundle. Unchanged manifests keep their renderer.
// The returned error joins the per-bundle failures; the registry stays
// usable either way.
func (r *Registry) Reload() error {
	names, err := r.src.Bundles()
	if err != nil {
		return fmt.Errorf("listing templates: %w", err)
	}

	r.mu.RLock()
	prev := r.entries
	r.mu.RUnlock()

	// Names arrive sorted; the first name of a case-folded group keeps the
	// key and the rest are skipped.
	next := make(map[string]*entry, len(names))
	clashes := map[string]string{}
	var errs []error
	for _, name := range names {
		key := strings.ToLower(name)
		if kept, ok := next[key]; ok {
			clashes[name] = kept.id
			continue
		}
		e := r.scan(name, prev[key])
		if e.err != nil {
			errs = append(errs, e.err)
		}
		next[key] = e
	}

	r.mu.Lock()
	for name, kept := range clashes {
		if r.clashes[name] != kept {
			r.log.Warn().Str("template", name).Str("shadowed_by", kept).
				Msg("template names differ only by case, ignoring bundle")
		}
	}
	r.clashes = clashes
	r.entries = next
	if d, ok := next[strings.ToLower(r.defaultID)]; ok && d.err == nil {
		r.def = d
	} else if r.def != nil {
		r.log.Warn().Str("template", r.defaultID).Msg("default template unavailable, keeping last good version")
	}
	r.mu.Unlock()

	return errors.Join(errs...)
}

// scan builds the entry for one bundle, reusing old when the manifest is
// unchanged.
func (r *Registry) scan(name string, old *entry) *entry {
	data, err := r.src.Read(name, templates.ManifestFile)
	if err != nil {
		return &entry{id: name, err: &quote.TemplateContractError{TemplateID: name, Missing: "manifest", Err: err}}
	}

	sum := sha256.Sum256(data)
	if old != nil && old.id == name && old.digest == sum {
		return old
	}

	e := &entry{id: name, digest: sum}
	m, err := templates.ParseManifest(data)
	if err != nil {
		e.err = &quote.TemplateContractError{TemplateID: name, Missing: "manifest", Err: err}
		r.log.Error().Err(e.err).Msg("template manifest unreadable")
		return e
	}
	e.renderer, e.err = templates.New(templates.Bundle{ID: name, Manifest: m, Source: r.src, Log: r.log})
	if e.err != nil {
		r.log.Error().Err(e.err).Msg("template rejected")
		return e
	}
	if old != nil {
		r.log.Info().Str("template", name).Str("layout", m.Layout).Msg("template reloaded")
	}
	return e
}

// Resolve reloads the bundles and returns the renderer for id. Empty and
// unknown ids resolve to the default template. A bundle that exists but
// violates the template contract yields a *quote.TemplateContractError,
// except for the default, which falls back to its last good version.
func (r *Registry) Resolve(id string) (templates.Renderer, error) {
	if err := r.Reload(); err != nil {
		r.log.Debug().Err(err).Msg("reload incomplete")
	}

	if id = strings.TrimSpace(id); id != "" {
		if e, ok := r.lookup(id); ok {
			if e.err == nil {
				return e.renderer, nil
			}
			if !strings.EqualFold(id, r.defaultID) {
				return nil, e.err
			}
		} else {
			r.log.Debug().Str("template", id).Msg("unknown template, using default")
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.def == nil {
		return nil, &quote.TemplateNotFoundError{TemplateID: r.defaultID}
	}
	return r.def.renderer, nil
}

func (r *Registry) lookup(id string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[strings.ToLower(id)]
	return e, ok
}

// Names returns the canonical ids of the usable templates, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		if e.err == nil {
			names = append(names, e.id)
		}
	}
	slices.Sort(names)
	return names
}

// Default returns the fallback template id.
func (r *Registry) Default() string { return r.defaultID }

// List describes every scanned bundle, broken ones included, sorted by id.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Info, 0, len(r.entries))
	for _, e := range r.entries {
		info := Info{ID: e.id, Err: e.err, Default: strings.EqualFold(e.id, r.defaultID)}
		if e.renderer != nil {
			info.Layout = e.renderer.Layout()
			info.Defaults = e.renderer.Defaults()
		}
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b Info) int { return strings.Compare(a.ID, b.ID) })
	return out
}
