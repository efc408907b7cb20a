package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var latencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Metrics agrupa os coletores Prometheus da API.
// Um *Metrics nil é válido e não registra nada.
type Metrics struct {
	HTTPRequestsTotal       *prometheus.CounterVec
	HTTPRequestDuration     *prometheus.HistogramVec
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec
	WorkflowTriggersTotal   *prometheus.CounterVec
}

// NewMetrics registra os coletores no registry padrão
func NewMetrics(serviceName string) *Metrics {
	return NewMetricsWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

func NewMetricsWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total de requisições HTTP recebidas",
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Latência das requisições HTTP",
				ConstLabels: labels,
				Buckets:     latencyBuckets,
			},
			[]string{"method", "path"},
		),
		UpstreamRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "upstream_requests_total",
				Help:        "Total de chamadas a serviços externos",
				ConstLabels: labels,
			},
			[]string{"upstream", "operation", "outcome"},
		),
		UpstreamRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "upstream_request_duration_seconds",
				Help:        "Latência das chamadas a serviços externos",
				ConstLabels: labels,
				Buckets:     latencyBuckets,
			},
			[]string{"upstream", "operation"},
		),
		WorkflowTriggersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "workflow_triggers_total",
				Help:        "Total de disparos de workflows n8n",
				ConstLabels: labels,
			},
			[]string{"workflow", "source", "outcome"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.UpstreamRequestsTotal,
		m.UpstreamRequestDuration,
		m.WorkflowTriggersTotal,
	)

	return m
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveUpstream registra uma chamada externa; err nil conta como sucesso
func (m *Metrics) ObserveUpstream(upstream, operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.UpstreamRequestsTotal.WithLabelValues(upstream, operation, outcome(err)).Inc()
	m.UpstreamRequestDuration.WithLabelValues(upstream, operation).Observe(time.Since(started).Seconds())
}

func (m *Metrics) ObserveWorkflowTrigger(workflow, source string, err error) {
	if m == nil {
		return
	}
	m.WorkflowTriggersTotal.WithLabelValues(workflow, source, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// Handler expõe o endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
