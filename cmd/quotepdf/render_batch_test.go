package main

// Notes:
// - renderBatch is tested with a fake FileGenerator and loader, so no PDF is
//   produced here. End-to-end rendering is covered in main_test.go.

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alnah/go-quotepdf"
)

type fakeGenerator struct {
	calls atomic.Int32
	fail  map[string]error // keyed by RefNo
}

func (f *fakeGenerator) GenerateFile(_ context.Context, req *quotepdf.Request, dir string) (string, error) {
	f.calls.Add(1)
	if err := f.fail[req.Quotation.RefNo]; err != nil {
		return "", err
	}
	return filepath.Join(dir, req.Quotation.RefNo+".pdf"), nil
}

// refLoader turns a path into a request whose RefNo is the path.
func refLoader(path string) (*quotepdf.Request, error) {
	if strings.HasPrefix(path, "missing") {
		return nil, ErrReadRequest
	}
	return &quotepdf.Request{Quotation: quotepdf.Quotation{RefNo: path}}, nil
}

// ---------------------------------------------------------------------------
// TestRenderBatch - Concurrency, ordering and failures
// ---------------------------------------------------------------------------

func TestRenderBatch(t *testing.T) {
	t.Parallel()

	t.Run("results keep input order", func(t *testing.T) {
		t.Parallel()

		files := []string{"a", "b", "c", "d", "e", "f", "g"}
		gen := &fakeGenerator{}
		results := renderBatch(context.Background(), gen, refLoader, files, "out", 3)

		if len(results) != len(files) {
			t.Fatalf("got %d results, want %d", len(results), len(files))
		}
		for i, r := range results {
			if r.InputPath != files[i] {
				t.Errorf("results[%d].InputPath = %q, want %q", i, r.InputPath, files[i])
			}
			if want := filepath.Join("out", files[i]+".pdf"); r.OutputPath != want {
				t.Errorf("results[%d].OutputPath = %q, want %q", i, r.OutputPath, want)
			}
		}
		if gen.calls.Load() != int32(len(files)) {
			t.Errorf("GenerateFile called %d times, want %d", gen.calls.Load(), len(files))
		}
	})

	t.Run("failures are isolated", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{fail: map[string]error{"b": quotepdf.ErrRenderBackend}}
		results := renderBatch(context.Background(), gen, refLoader, []string{"a", "b", "missing.json"}, "out", 2)

		if results[0].Err != nil {
			t.Errorf("a: unexpected error %v", results[0].Err)
		}
		if !errors.Is(results[1].Err, quotepdf.ErrRenderBackend) {
			t.Errorf("b: error = %v, want ErrRenderBackend", results[1].Err)
		}
		if !errors.Is(results[2].Err, ErrReadRequest) {
			t.Errorf("missing: error = %v, want ErrReadRequest", results[2].Err)
		}
		if gen.calls.Load() != 2 {
			t.Errorf("GenerateFile called %d times, want 2", gen.calls.Load())
		}
	})

	t.Run("cancelled context skips work", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		gen := &fakeGenerator{}
		results := renderBatch(ctx, gen, refLoader, []string{"a", "b"}, "out", 1)

		for _, r := range results {
			if !errors.Is(r.Err, context.Canceled) {
				t.Errorf("%s: error = %v, want context.Canceled", r.InputPath, r.Err)
			}
		}
		if gen.calls.Load() != 0 {
			t.Errorf("GenerateFile called %d times, want 0", gen.calls.Load())
		}
	})

	t.Run("no files", func(t *testing.T) {
		t.Parallel()

		if got := renderBatch(context.Background(), &fakeGenerator{}, refLoader, nil, "out", 4); got != nil {
			t.Errorf("renderBatch(nil) = %v, want nil", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestPrintResults - Output format
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []RenderResult{
		{InputPath: "a.json", OutputPath: "out/a.pdf"},
		{InputPath: "b.json", Err: errors.New("boom")},
	}

	t.Run("reports each file and a summary", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		printResults(&stdout, &stderr, results, false)

		if !strings.Contains(stdout.String(), "Created out/a.pdf") {
			t.Errorf("stdout = %q, want Created line", stdout.String())
		}
		if !strings.Contains(stdout.String(), "1 succeeded, 1 failed") {
			t.Errorf("stdout = %q, want summary", stdout.String())
		}
		if got := stderr.String(); got != "FAILED b.json: boom\n" {
			t.Errorf("stderr = %q", got)
		}
	})

	t.Run("quiet keeps failures only", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		printResults(&stdout, &stderr, results, true)

		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", stdout.String())
		}
		if !strings.Contains(stderr.String(), "FAILED b.json") {
			t.Errorf("stderr = %q, want failure", stderr.String())
		}
	})

	t.Run("single failure left to caller", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		printResults(&stdout, &stderr, results[1:], false)

		if stdout.Len() != 0 || stderr.Len() != 0 {
			t.Errorf("stdout = %q, stderr = %q, want both empty", stdout.String(), stderr.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestBatchError - Exit status of a batch
// ---------------------------------------------------------------------------

func TestBatchError(t *testing.T) {
	t.Parallel()

	ok := RenderResult{InputPath: "a"}
	bad := RenderResult{InputPath: "b", Err: ErrReadRequest}

	if err := batchError([]RenderResult{ok, ok}); err != nil {
		t.Errorf("all succeeded: error = %v, want nil", err)
	}
	if err := batchError([]RenderResult{bad}); err != ErrReadRequest {
		t.Errorf("single failure: error = %v, want the failure itself", err)
	}

	err := batchError([]RenderResult{ok, bad, bad})
	if !errors.Is(err, ErrReadRequest) {
		t.Errorf("error = %v, want wrapped ErrReadRequest", err)
	}
	if !strings.Contains(err.Error(), "2 of 3") {
		t.Errorf("error = %q, want failure count", err)
	}

	if s := countResults([]RenderResult{ok, bad, bad}); s != (ResultSummary{Succeeded: 1, Failed: 2}) {
		t.Errorf("countResults() = %+v", s)
	}
}
