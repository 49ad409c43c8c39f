package fileutil_test

// Notes:
// - The rename failure branch of WriteAtomic is not tested: it needs a
//   filesystem that refuses rename within one directory.

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-quotepdf/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteAtomic - Temp file plus rename
// ---------------------------------------------------------------------------

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes final file only", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")
		path, err := fileutil.WriteAtomic(dir, "Quotation-default-Q1.pdf", func(w io.Writer) error {
			_, err := io.WriteString(w, "%PDF-1.3")
			return err
		})
		if err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}
		if path != filepath.Join(dir, "Quotation-default-Q1.pdf") {
			t.Errorf("path = %q", path)
		}
		got, err := os.ReadFile(path)
		if err != nil || string(got) != "%PDF-1.3" {
			t.Errorf("content = %q, %v", got, err)
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 1 {
			t.Errorf("dir has %d entries, want only the final file", len(entries))
		}
	})

	t.Run("failed write leaves nothing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		boom := errors.New("boom")
		_, err := fileutil.WriteAtomic(dir, "q.pdf", func(w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("WriteAtomic() error = %v, want boom", err)
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 0 {
			t.Errorf("dir has %d entries, want none", len(entries))
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "q.pdf"), []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}
		path, err := fileutil.WriteAtomic(dir, "q.pdf", func(w io.Writer) error {
			_, err := io.WriteString(w, "new")
			return err
		})
		if err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}
		if got, _ := os.ReadFile(path); string(got) != "new" {
			t.Errorf("content = %q, want new", got)
		}
	})

	t.Run("rejects path in name", func(t *testing.T) {
		t.Parallel()

		_, err := fileutil.WriteAtomic(t.TempDir(), "../q.pdf", func(io.Writer) error { return nil })
		if !errors.Is(err, fileutil.ErrNamePathTraversal) {
			t.Errorf("WriteAtomic() error = %v, want ErrNamePathTraversal", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestValidateName - File name validation
// ---------------------------------------------------------------------------

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"plain name", "Quotation-VIG-Q1.pdf", nil},
		{"empty", "", fileutil.ErrNameEmpty},
		{"slash", "a/b.pdf", fileutil.ErrNamePathTraversal},
		{"backslash", "a\\b.pdf", fileutil.ErrNamePathTraversal},
		{"null byte", "a\x00.pdf", fileutil.ErrNamePathTraversal},
		{"dot dot", "..", fileutil.ErrNamePathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists - Stat helpers
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true")
	}
	if !fileutil.DirExists(dir) || fileutil.DirExists(file) {
		t.Error("DirExists mismatch")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"quotepdf":          false,
		"./quotepdf.yaml":   true,
		"/etc/quotepdf.yml": true,
		`C:\cfg.yaml`:       true,
	}
	for in, want := range tests {
		if got := fileutil.IsFilePath(in); got != want {
			t.Errorf("IsFilePath(%q) = %v, want %v", in, got, want)
		}
	}
	if !fileutil.IsURL("https://example.com") || fileutil.IsURL("example.com") {
		t.Error("IsURL mismatch")
	}
}
