package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/alnah/go-quotepdf"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type fileResponse struct {
	Success bool   `json:"success"`
	File    string `json:"file"`
}

type healthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}

type templateRates struct {
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
}

type templateEntry struct {
	ID     string        `json:"id"`
	Layout string        `json:"layout,omitempty"`
	Rates  templateRates `json:"rates"`
	Error  string        `json:"error,omitempty"`
}

type templatesResponse struct {
	Templates []templateEntry `json:"templates"`
	Default   string          `json:"default"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Uptime: s.now().Sub(s.started).Seconds(),
	})
}

func (s *Server) templates(w http.ResponseWriter, r *http.Request) {
	if err := s.tpl.Reload(); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("some templates failed to load")
	}
	resp := templatesResponse{Templates: []templateEntry{}, Default: s.tpl.Default()}
	for _, info := range s.tpl.List() {
		e := templateEntry{
			ID:     info.ID,
			Layout: info.Layout,
			Rates:  templateRates{Discount: info.Defaults.Discount, Tax: info.Defaults.Tax},
		}
		if info.Err != nil {
			e.Error = info.Err.Error()
		}
		resp.Templates = append(resp.Templates, e)
	}
	writeJSON(w, http.StatusOK, resp)
}

// generateFile writes the PDF under the public directory and returns its
// URL.
func (s *Server) generateFile(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	path, err := s.gen.GenerateFile(r.Context(), req, s.cfg.PublicDir)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fileResponse{Success: true, File: s.fileURL(r, filepath.Base(path))})
}

// generatePDF streams the PDF in the response. Headers are committed only
// after the document rendered completely.
func (s *Server) generatePDF(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	name, err := s.gen.Render(r.Context(), req, &buf)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*quotepdf.Request, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = &quotepdf.InvalidInputError{Err: fmt.Errorf("body exceeds %d bytes", tooLarge.Limit)}
		} else {
			err = &quotepdf.InvalidInputError{Err: err}
		}
		s.fail(w, r, err)
		return nil, false
	}
	req, err := s.gen.DecodeJSON(body)
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	return req, true
}

// fail maps pipeline errors to 400 for bad input and 500 otherwise.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, quotepdf.ErrInvalidInput) {
		status = http.StatusBadRequest
	}
	ev := zerolog.Ctx(r.Context()).Error()
	if status < http.StatusInternalServerError {
		ev = zerolog.Ctx(r.Context()).Warn()
	}
	ev.Err(err).Msg("quotation failed")
	writeJSON(w, status, errorResponse{Success: false, Message: err.Error()})
}

func (s *Server) fileURL(r *http.Request, name string) string {
	if s.cfg.PublicURL != "" {
		return s.cfg.PublicURL + "/" + name
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + publicPrefix + "/" + name
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
