package httplog

import (
	"log/slog"
	"net/http"
	"time"
)

// LoggingRoundTripper логирует каждый исходящий запрос к внешнему API
type LoggingRoundTripper struct {
	log  *slog.Logger
	next http.RoundTripper
}

func NewLoggingRoundTripper(log *slog.Logger, next http.RoundTripper) *LoggingRoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &LoggingRoundTripper{log: log, next: next}
}

func (rt *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := rt.next.RoundTrip(r)
	if err != nil {
		rt.log.Error("request failed",
			slog.String("method", r.Method),
			slog.String("url", r.URL.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	rt.log.Info("request sent",
		slog.String("method", r.Method),
		slog.String("url", r.URL.String()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)
	return resp, nil
}
