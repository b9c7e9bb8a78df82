package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus метрик сервиса
// Все методы безопасны для вызова на nil (метрики выключены)
type Metrics struct {
	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	remoteRequestsTotal   *prometheus.CounterVec
	remoteRequestDuration *prometheus.HistogramVec
	submissionsTotal      *prometheus.CounterVec
	offlineQueueSize      prometheus.Gauge
	drainRunsTotal        *prometheus.CounterVec
	drainedEntriesTotal   *prometheus.CounterVec
	dbQueryDuration       *prometheus.HistogramVec
	dbConnections         *prometheus.GaugeVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled by the service",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		remoteRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "webhook_requests_total",
			Help:        "Total number of calls to the remote webhook backend",
			ConstLabels: constLabels,
		}, []string{"endpoint", "outcome"}),
		remoteRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "webhook_request_duration_seconds",
			Help:        "Latency of calls to the remote webhook backend",
			ConstLabels: constLabels,
			Buckets:     []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_submissions_total",
			Help:        "Reservation submissions by outcome (sent, queued, failed)",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		offlineQueueSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "offline_queue_size",
			Help:        "Number of reservations waiting in the offline queue",
			ConstLabels: constLabels,
		}),
		drainRunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "offline_queue_drain_runs_total",
			Help:        "Offline queue drain passes by result (completed, skipped, failed)",
			ConstLabels: constLabels,
		}, []string{"result"}),
		drainedEntriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "offline_queue_drained_entries_total",
			Help:        "Offline queue entries processed during drain by outcome (delivered, kept)",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Latency of local storage queries",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Local storage connection pool state (open, in_use, idle)",
			ConstLabels: constLabels,
		}, []string{"state"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.remoteRequestsTotal,
		m.remoteRequestDuration,
		m.submissionsTotal,
		m.offlineQueueSize,
		m.drainRunsTotal,
		m.drainedEntriesTotal,
		m.dbQueryDuration,
		m.dbConnections,
	)

	return m
}

// ObserveHTTPRequest учитывает входящий HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveRemoteRequest учитывает вызов внешнего webhook
func (m *Metrics) ObserveRemoteRequest(endpoint, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.remoteRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.remoteRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// IncSubmission учитывает результат отправки бронирования
func (m *Metrics) IncSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

// SetOfflineQueueSize обновляет размер офлайн очереди
func (m *Metrics) SetOfflineQueueSize(size int) {
	if m == nil {
		return
	}
	m.offlineQueueSize.Set(float64(size))
}

// IncDrainRun учитывает проход по офлайн очереди
func (m *Metrics) IncDrainRun(result string) {
	if m == nil {
		return
	}
	m.drainRunsTotal.WithLabelValues(result).Inc()
}

// AddDrainedEntries учитывает обработанные при проходе записи
func (m *Metrics) AddDrainedEntries(outcome string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.drainedEntriesTotal.WithLabelValues(outcome).Add(float64(count))
}

// ObserveDBQuery учитывает запрос к локальному хранилищу
func (m *Metrics) ObserveDBQuery(operation, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues("open").Set(float64(open))
	m.dbConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues("idle").Set(float64(idle))
}
