package observability_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"iil_api/internal/adapters/observability"
	"iil_api/internal/domain"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so the vectors are non-empty
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveStore("course", "find", nil, 3*time.Millisecond)
	observability.ObserveSeed("course", 3)
	observability.ObserveEnquiry("ok")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, name := range []string{
		"iil_http_requests_total",
		"iil_store_operations_total",
		"iil_seed_documents_total",
		"iil_enquiries_total",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestLabelErr(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{domain.ErrNotFound, "not_found"},
		{fmt.Errorf("wrapped: %w", domain.ErrStoreUnavailable), "unavailable"},
		{errors.New("boom"), "error"},
	}
	for _, c := range cases {
		if got := observability.LabelErr(c.err); got != c.want {
			t.Errorf("LabelErr(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}
