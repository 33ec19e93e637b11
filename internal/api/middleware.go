package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AlexZinkM/leochain-explorer/internal/logging"

	"github.com/rs/zerolog"
)

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLog logs one line per request. Server errors are logged at warn level.
func withRequestLog(next http.Handler, logger zerolog.Logger) http.Handler {
	logger = logging.ForComponent(logger, "http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		level := zerolog.DebugLevel
		if rec.status >= http.StatusInternalServerError {
			level = zerolog.WarnLevel
		}
		logger.WithLevel(level).
			Str(logging.FieldMethod, r.Method).
			Str(logging.FieldPath, r.URL.Path).
			Int(logging.FieldStatus, rec.status).
			Dur(logging.FieldDuration, time.Since(start)).
			Msg("request")
	})
}

// withSameOrigin rejects state-changing requests sent from another site.
// Browsers tag such requests with Sec-Fetch-Site or a foreign Origin; clients sending neither pass.
func withSameOrigin(next http.Handler, logger zerolog.Logger) http.Handler {
	logger = logging.ForComponent(logger, "http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		if reason := crossSite(r); reason != "" {
			logger.Warn().
				Str(logging.FieldMethod, r.Method).
				Str(logging.FieldPath, r.URL.Path).
				Str(logging.FieldReason, reason).
				Msg("rejected cross-site request")
			http.Error(w, "Cross-site request rejected", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// crossSite returns why r does not come from this origin, or "" when it does
func crossSite(r *http.Request) string {
	switch site := r.Header.Get("Sec-Fetch-Site"); site {
	case "", "same-origin", "none":
	default:
		return "sec-fetch-site " + site
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		return ""
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" || !strings.EqualFold(u.Host, r.Host) {
		return "origin " + origin
	}
	return ""
}
