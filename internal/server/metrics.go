package server

import (
	"github.com/andreiashu/postaddr"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	checksTotal      *prometheus.CounterVec
	storedTotal      prometheus.Counter
}

// NewMetrics creates the collectors and registers them, together with the
// checker's cache counters, on reg.
func NewMetrics(namespace string, reg prometheus.Registerer, checker *postaddr.Checker) *Metrics {
	if namespace == "" {
		namespace = "postaddr"
	}
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path", "status"},
		),
		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "address_checks_total",
				Help:      "Address checks by country and outcome",
			},
			[]string{"country", "outcome"},
		),
		storedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "addresses_stored_total",
				Help:      "Addresses written to the address book",
			},
		),
	}
	reg.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.requestsInFlight,
		m.checksTotal,
		m.storedTotal,
	)

	if checker != nil {
		reg.MustRegister(
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "check_cache_hits_total",
				Help:      "Checks answered from the result cache",
			}, func() float64 {
				hits, _ := checker.Stats()
				return float64(hits)
			}),
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "check_cache_misses_total",
				Help:      "Checks that parsed the address text",
			}, func() float64 {
				_, misses := checker.Stats()
				return float64(misses)
			}),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "check_cache_entries",
				Help:      "Results currently held by the check cache",
			}, func() float64 {
				return float64(checker.Len())
			}),
		)
	}
	return m
}

// observeCheck counts a check outcome: "valid" or the error kind.
func (m *Metrics) observeCheck(country string, err error) {
	outcome := "valid"
	if err != nil {
		outcome = postaddr.ErrorKind(err)
	}
	if country == "" {
		country = "unknown"
	}
	m.checksTotal.WithLabelValues(country, outcome).Inc()
}
