// Package prometheus exposes the metrics of the registry in the Prometheus exposition format.
package prometheus

import (
	"sync"

	"github.com/labstack/echo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PluginName is the name of the prometheus plugin.
const PluginName = "Prometheus"

// Metrics holds the Prometheus registry of the node and the collectors that refresh gauges before every scrape.
type Metrics struct {
	registry *prometheus.Registry

	collects      []func()
	collectsMutex sync.Mutex

	requestsTotal     *prometheus.CounterVec
	requestsRejected  *prometheus.CounterVec
	rateLimitHits     prometheus.Counter
	assetsCreated     prometheus.Counter
	assetsTransferred prometheus.Counter
	nonce             prometheus.Gauge
	assetCount        prometheus.Gauge
}

// New returns Metrics with the web API collectors registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webapi_requests_total",
		Help: "number of web API requests per operation",
	}, []string{"operation"})

	m.requestsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webapi_requests_rejected_total",
		Help: "number of rejected web API requests per operation and reason",
	}, []string{"operation", "reason"})

	m.rateLimitHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webapi_rate_limit_hits_total",
		Help: "number of times an account exceeded the request limit of the web API",
	})

	m.registry.MustRegister(m.requestsTotal)
	m.registry.MustRegister(m.requestsRejected)
	m.registry.MustRegister(m.rateLimitHits)

	return m
}

// Registry returns the Prometheus registry that holds all metrics of the node.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RequestReceived counts a web API request.
func (m *Metrics) RequestReceived(operation string) {
	m.requestsTotal.WithLabelValues(operation).Inc()
}

// RequestRejected counts a web API request that was answered with an error.
func (m *Metrics) RequestRejected(operation, reason string) {
	m.requestsRejected.WithLabelValues(operation, reason).Inc()
}

// RateLimitHit counts an account that exceeded the request limit.
func (m *Metrics) RateLimitHit() {
	m.rateLimitHits.Inc()
}

// Collect refreshes all gauges.
func (m *Metrics) Collect() {
	m.collectsMutex.Lock()
	defer m.collectsMutex.Unlock()

	for _, collect := range m.collects {
		collect()
	}
}

// Handler returns the echo handler of the /metrics route.
func (m *Metrics) Handler() echo.HandlerFunc {
	handler := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})

	return func(c echo.Context) error {
		m.Collect()
		handler.ServeHTTP(c.Response(), c.Request())

		return nil
	}
}

func (m *Metrics) addCollect(collect func()) {
	m.collectsMutex.Lock()
	defer m.collectsMutex.Unlock()

	m.collects = append(m.collects, collect)
}
