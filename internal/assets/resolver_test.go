package assets

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver("")
		if err != nil {
			t.Fatalf("NewResolver(\"\") error = %v", err)
		}
		if r.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestResolver_Read(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeBundleFile(t, base, "default", "logo.png", "disk-logo")
	writeBundleFile(t, base, "VIG", "template.yaml", "layout: vig\n")

	r, err := NewResolver(base)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	t.Run("disk file wins", func(t *testing.T) {
		t.Parallel()

		got, err := r.Read("default", "logo.png")
		if err != nil || string(got) != "disk-logo" {
			t.Errorf("Read() = %q, %v", got, err)
		}
	})

	t.Run("falls back to embedded manifest", func(t *testing.T) {
		t.Parallel()

		got, err := r.Read("default", "template.yaml")
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if !strings.Contains(string(got), "layout: classic") {
			t.Errorf("Read() = %q, want embedded default manifest", got)
		}
	})

	t.Run("not found anywhere", func(t *testing.T) {
		t.Parallel()

		_, err := r.Read("VIG", "logo.png")
		if !IsNotFound(err) {
			t.Errorf("Read() error = %v, want not found", err)
		}
	})

	t.Run("validation errors do not fall back", func(t *testing.T) {
		t.Parallel()

		_, err := r.Read("default", "../x")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("Read() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestResolver_Bundles(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeBundleFile(t, base, "default", "template.yaml", "layout: classic\n")
	writeBundleFile(t, base, "VIG", "template.yaml", "layout: vig\n")

	r, err := NewResolver(base)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	got, err := r.Bundles()
	if err != nil {
		t.Fatalf("Bundles() error = %v", err)
	}
	if want := []string{"VIG", "default"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Bundles() = %v, want %v", got, want)
	}
}

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	e := NewEmbeddedLoader()

	names, err := e.Bundles()
	if err != nil {
		t.Fatalf("Bundles() error = %v", err)
	}
	if !reflect.DeepEqual(names, []string{"default"}) {
		t.Errorf("Bundles() = %v, want [default]", names)
	}

	if _, err := e.Read("default", "template.yaml"); err != nil {
		t.Errorf("Read(default manifest) error = %v", err)
	}
	if _, err := e.Read("default", "logo.png"); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("Read(logo) error = %v, want ErrAssetNotFound", err)
	}
	if _, err := e.Read("VIG", "template.yaml"); !errors.Is(err, ErrBundleNotFound) {
		t.Errorf("Read(VIG) error = %v, want ErrBundleNotFound", err)
	}
}

func TestStandardTerms(t *testing.T) {
	t.Parallel()

	a := StandardTerms()
	if !strings.Contains(string(a), "Limitation of Liability") {
		t.Error("StandardTerms() missing expected clause")
	}
	a[0] = 'X'
	if StandardTerms()[0] == 'X' {
		t.Error("StandardTerms() must return a copy")
	}
}

func TestResolver_SharesBasePathWithLoader(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(base, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	writeBundleFile(t, base, "VIG", "template.yaml", "layout: vig\n")

	r, err := NewResolver(link)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	if _, err := r.Read("VIG", "template.yaml"); err != nil {
		t.Errorf("Read() through symlinked base error = %v", err)
	}
}
