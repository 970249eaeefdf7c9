package web

import (
	"net/http"
	"time"
)

// statusRecorder captures the status code a handler writes so the access log
// can report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// accessLog emits one record per completed request: timestamp, path, status,
// method, protocol, and user agent ("-" when the header is absent). Logging
// never affects the response.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		agent := r.Header.Get("User-Agent")
		if agent == "" {
			agent = "-"
		}
		s.logger.Log(
			"ts", time.Now().UTC().Format(time.RFC3339),
			"path", r.URL.Path,
			"status", rec.status,
			"method", r.Method,
			"proto", r.Proto,
			"agent", agent,
		)
	})
}
