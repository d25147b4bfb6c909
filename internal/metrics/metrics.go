package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private Prometheus registry. All methods are safe on a nil
// receiver so callers may leave metrics unwired.
type Recorder struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	payrollGenerated prometheus.Counter
	payrollNetSalary prometheus.Histogram
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	payrollGenerated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "payroll_generated_total",
		Help: "Total number of payroll records generated",
	})

	payrollNetSalary := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "payroll_net_salary",
		Help:    "Net salary of generated payroll records",
		Buckets: prometheus.ExponentialBuckets(500, 2, 10),
	})

	registry.MustRegister(
		requestDuration,
		requestTotal,
		payrollGenerated,
		payrollNetSalary,
		collectors.NewGoCollector(),
	)

	return &Recorder{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		payrollGenerated: payrollGenerated,
		payrollNetSalary: payrollNetSalary,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *Recorder) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

func (m *Recorder) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

func (m *Recorder) ObservePayroll(netSalary float64) {
	if m == nil {
		return
	}
	m.payrollGenerated.Inc()
	m.payrollNetSalary.Observe(netSalary)
}
