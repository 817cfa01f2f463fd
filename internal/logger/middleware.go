package logger

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the id assigned to every inbound request
const RequestIDHeader = "X-Request-Id"

// Middleware logs each request received with the provided logger
func Middleware(log *zap.SugaredLogger, name string) func(next http.Handler) http.Handler {
	log = log.Desugar().WithOptions(zap.AddCallerSkip(1)).Sugar().Named(name)

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, reqID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			log.Infow("Got request",
				"status", ww.Status(),
				"method", r.Method,
				"url", r.URL.Path,
				"req_ip", r.RemoteAddr,
				"size", ww.BytesWritten(),
				"latency", time.Since(start).String(),
				"req_id", reqID,
			)
		}
		return http.HandlerFunc(fn)
	}
}
