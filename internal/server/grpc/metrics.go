package grpc

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc/codes"
)

var histogramBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Metrics counts and times unary calls per method and status code.
type Metrics struct {
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg. Collectors already present in
// reg are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "accountregistry",
			Subsystem: "grpc",
			Name:      "requests_total",
			Help:      "Count of handled gRPC requests",
		}, []string{"method", "code"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "accountregistry",
			Subsystem: "grpc",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of gRPC handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "code"}),
	}

	if err := reg.Register(m.requestTotal); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		m.requestTotal = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(m.requestLatency); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		m.requestLatency = are.ExistingCollector.(*prometheus.HistogramVec)
	}

	return m, nil
}

func (m *Metrics) observe(method string, code codes.Code, d time.Duration) {
	labels := prometheus.Labels{"method": method, "code": code.String()}
	m.requestTotal.With(labels).Inc()
	m.requestLatency.With(labels).Observe(d.Seconds())
}
