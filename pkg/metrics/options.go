package metrics

import "github.com/prometheus/client_golang/prometheus"

// Option configura o Manager
type Option func(*Manager)

// WithNamespace define o namespace das métricas
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets define os buckets dos histogramas de latência
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRegistry usa um registry próprio (útil em testes)
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}
