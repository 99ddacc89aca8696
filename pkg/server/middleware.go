package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/seedpacket/pkg/observability"
)

// requestLogger logs one line per request and reports it to the HTTP hooks.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()
			observability.HTTP().OnRequest(ctx, r.Method, r.URL.Path)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				dur := time.Since(start)
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				observability.HTTP().OnResponse(ctx, r.Method, r.URL.Path, status, dur)

				level := log.InfoLevel
				if status >= http.StatusInternalServerError {
					level = log.ErrorLevel
				}
				logger.Log(level, "request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", status,
					"bytes", ww.BytesWritten(),
					"duration", dur.Round(time.Microsecond),
					"remote", r.RemoteAddr,
					"request_id", middleware.GetReqID(ctx))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
