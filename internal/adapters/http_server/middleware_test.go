package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	server "iil_api/internal/adapters/http_server"
)

// headerCounter records every WriteHeader call that reaches the real writer.
type headerCounter struct {
	http.ResponseWriter
	codes []int
}

func (c *headerCounter) WriteHeader(code int) {
	c.codes = append(c.codes, code)
	c.ResponseWriter.WriteHeader(code)
}

func TestMiddleware_ForwardsFirstWriteHeaderOnly(t *testing.T) {
	twice := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("ok"))
	})

	for name, h := range map[string]http.Handler{
		"metrics": server.Metrics(twice),
		"logger":  server.Logger(zerolog.Nop())(twice),
	} {
		t.Run(name, func(t *testing.T) {
			c := &headerCounter{ResponseWriter: httptest.NewRecorder()}
			h.ServeHTTP(c, httptest.NewRequest(http.MethodGet, "/", nil))
			if len(c.codes) != 1 || c.codes[0] != http.StatusCreated {
				t.Fatalf("expected a single 201, got %v", c.codes)
			}
		})
	}
}
