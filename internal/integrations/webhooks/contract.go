package webhooks

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для учета вызовов внешнего сервиса
type MetricsRecorder interface {
	ObserveRemoteRequest(endpoint, outcome string, duration time.Duration)
}
