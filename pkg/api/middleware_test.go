package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok")) //nolint:errcheck
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		allowed      []string
		method       string
		origin       string
		expectOrigin string
		expectBody   string
	}{
		{
			name:         "wildcard without origin header",
			allowed:      []string{"*"},
			method:       http.MethodGet,
			expectOrigin: "*",
			expectBody:   "ok",
		},
		{
			name:         "wildcard echoes the caller",
			allowed:      []string{"*"},
			method:       http.MethodGet,
			origin:       "https://dapp.example",
			expectOrigin: "https://dapp.example",
			expectBody:   "ok",
		},
		{
			name:         "listed origin",
			allowed:      []string{"https://a.example", "https://b.example"},
			method:       http.MethodGet,
			origin:       "https://b.example",
			expectOrigin: "https://b.example",
			expectBody:   "ok",
		},
		{
			name:       "unlisted origin still reaches the handler",
			allowed:    []string{"https://a.example"},
			method:     http.MethodGet,
			origin:     "https://evil.example",
			expectBody: "ok",
		},
		{
			name:         "preflight is answered by the middleware",
			allowed:      []string{"https://a.example"},
			method:       http.MethodOptions,
			origin:       "https://a.example",
			expectOrigin: "https://a.example",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := CORSMiddleware(tt.allowed)(http.HandlerFunc(okHandler))

			req := httptest.NewRequest(tt.method, "/api/v1/logs", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, tt.expectBody, w.Body.String())
			require.Equal(t, tt.expectOrigin, w.Header().Get("Access-Control-Allow-Origin"))

			if tt.expectOrigin == "" {
				require.Empty(t, w.Header().Get("Access-Control-Allow-Methods"))
				return
			}
			require.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
			require.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
		})
	}
}

func TestLoggingMiddleware_KeepsStatusAndBody(t *testing.T) {
	codes := []int{http.StatusOK, http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError}

	for _, code := range codes {
		t.Run(http.StatusText(code), func(t *testing.T) {
			h := LoggingMiddleware(logger.NewNopLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(code)
				w.Write([]byte("body")) //nolint:errcheck
			}))

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, code, w.Code)
			require.Equal(t, "body", w.Body.String())
		})
	}
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusAccepted)
	rw.WriteHeader(http.StatusTeapot)

	require.Equal(t, http.StatusAccepted, rw.statusCode)
	require.Equal(t, http.StatusAccepted, rec.Code)

	implicit := &responseWriter{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}
	_, err := implicit.Write([]byte("x"))
	require.NoError(t, err)
	implicit.WriteHeader(http.StatusNotFound)
	require.Equal(t, http.StatusOK, implicit.statusCode)
}

func TestRecoveryMiddleware(t *testing.T) {
	h := RecoveryMiddleware(logger.NewNopLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map write")
	}))

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/logs", nil))
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Internal Server Error")
}

func TestMiddlewareChain_PanicBehindCORS(t *testing.T) {
	log := logger.NewNopLogger()

	var h http.Handler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })
	h = CORSMiddleware([]string{"*"})(h)
	h = LoggingMiddleware(log)(h)
	h = RecoveryMiddleware(log)(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/coverage", nil)
	req.Header.Set("Origin", "https://dapp.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "https://dapp.example", w.Header().Get("Access-Control-Allow-Origin"))
}
