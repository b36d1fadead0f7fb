package observability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"iil_api/internal/domain"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "iil", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "iil", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "iil", Name: "store_operations_total", Help: "Document store operations."},
		[]string{"collection", "op", "result"},
	)
	StoreLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "iil", Name: "store_operation_duration_seconds",
			Help:    "Document store operation duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection", "op"},
	)
	SeedDocuments = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "iil", Name: "seed_documents_total", Help: "Sample documents inserted by the seeder."},
		[]string{"collection"},
	)
	Enquiries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "iil", Name: "enquiries_total", Help: "Enquiry submissions by outcome."},
		[]string{"result"}, // result: ok|invalid|error
	)
	SeedLockEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "iil", Name: "seed_lock_events_total", Help: "Seed lock acquired/busy/released."},
		[]string{"event"},
	)
)

// Serve starts a side metrics server for reg on addr; an empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, StoreOperations, StoreLatency, SeedDocuments, Enquiries, SeedLockEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveStore(collection, op string, err error, dur time.Duration) {
	StoreOperations.WithLabelValues(collection, op, LabelErr(err)).Inc()
	StoreLatency.WithLabelValues(collection, op).Observe(dur.Seconds())
}

func ObserveSeed(collection string, n int) {
	SeedDocuments.WithLabelValues(collection).Add(float64(n))
}

func ObserveEnquiry(result string) { // result: ok|invalid|error
	Enquiries.WithLabelValues(result).Inc()
}

func ObserveSeedLock(event string) { // event: acquired|busy|released|error
	SeedLockEvents.WithLabelValues(event).Inc()
}

// LabelErr maps an error onto a low-cardinality result label.
func LabelErr(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
