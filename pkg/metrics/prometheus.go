// Package metrics expõe as métricas Prometheus do serviço de ranking
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "score_ranking"

// Manager agrupa os coletores do serviço
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	submissions         *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	gameSubmissions     *prometheus.GaugeVec
	gameStatsLastUnix   prometheus.Gauge
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        defaultNamespace,
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.submissions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "score_submissions_total",
		Help:      "Total de submissões de pontuação por resultado (created, invalid, error)",
	}, []string{"result"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "Total de requisições HTTP por rota, método e status",
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP em segundos",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method"})

	m.gameSubmissions = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "game_submissions",
		Help:      "Quantidade de submissões gravadas por jogo na última coleta",
	}, []string{"game_id"})

	m.gameStatsLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "game_stats_last_collected_unix",
		Help:      "Timestamp da última coleta de estatísticas por jogo",
	})
}

// ObserveSubmission conta uma submissão pelo seu resultado
func (m *Manager) ObserveSubmission(result string) {
	m.submissions.WithLabelValues(result).Inc()
}

// ObserveHTTPRequest registra contagem e latência de uma requisição
func (m *Manager) ObserveHTTPRequest(route, method string, statusCode int, duration time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// SetGameSubmissions substitui os valores por jogo pela coleta mais recente
func (m *Manager) SetGameSubmissions(counts map[string]int64, collectedAt time.Time) {
	m.gameSubmissions.Reset()
	for gameID, total := range counts {
		m.gameSubmissions.WithLabelValues(gameID).Set(float64(total))
	}
	m.gameStatsLastUnix.Set(float64(collectedAt.Unix()))
}

// Handler expõe o registry no formato de exposição do Prometheus
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry retorna o registry usado pelo Manager
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}
