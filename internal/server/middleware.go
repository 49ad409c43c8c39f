package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/alnah/go-quotepdf/internal/logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds client-supplied ids.
const maxRequestIDLength = 64

// RequestID returns the id stored by the requestID middleware.
func RequestID(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}

// requestID keeps a sane client id or assigns a new UUID, echoes it and
// hands it to chi's RequestID middleware for the context.
func requestID(next http.Handler) http.Handler {
	store := middleware.RequestID(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		r.Header.Set(middleware.RequestIDHeader, id)
		w.Header().Set(RequestIDHeader, id)
		store.ServeHTTP(w, r)
	})
}

// accessLog logs one line per request and puts a request-scoped logger in
// the context for handlers.
func accessLog(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			l := logger.WithRequestID(log, RequestID(r.Context()))
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(l.WithContext(r.Context())))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			ev := l.Info()
			if status >= http.StatusInternalServerError {
				ev = l.Error()
			}
			ev.Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote", r.RemoteAddr).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
