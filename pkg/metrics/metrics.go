package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	registry = prometheus.NewRegistry()

	// StoreOperations counts repository calls by operation and outcome.
	StoreOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "registry",
		Name:      "store_operations_total",
		Help:      "Contract store operations by operation and result.",
	}, []string{"operation", "result"})

	// HTTPRequests counts served API requests by route and status.
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "registry",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
)

func init() {
	registry.MustRegister(StoreOperations, HTTPRequests)
}

// ObserveStore records the outcome of one store operation.
func ObserveStore(operation string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	StoreOperations.WithLabelValues(operation, result).Inc()
}

// ObserveHTTP records one served request. route is the matched pattern,
// not the raw path.
func ObserveHTTP(method, route string, status int) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Handler exposes the registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
