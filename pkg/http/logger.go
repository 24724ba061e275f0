package http

import (
	"net/url"

	"go.uber.org/zap"

	"weather-dashboard/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response or a transport failure
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {}

func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapLogger writes outbound calls to pkg/log, masking the listed query parameters
type ZapLogger struct {
	redactedParams []string
}

// NewZapLogger creates a logger that hides the values of redactedParams (e.g. api keys)
func NewZapLogger(redactedParams ...string) *ZapLogger {
	return &ZapLogger{redactedParams: redactedParams}
}

func (l *ZapLogger) LogRequest(method, rawURL string, _ map[string]string, _ string) {
	log.Debug("outbound request",
		zap.String("method", method),
		zap.String("url", l.redact(rawURL)))
}

func (l *ZapLogger) LogResponseSuccess(method, rawURL string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Debug("outbound response",
		zap.String("method", method),
		zap.String("url", l.redact(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l *ZapLogger) LogResponseError(method, rawURL string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("outbound request failed",
		zap.String("method", method),
		zap.String("url", l.redact(rawURL)),
		zap.Int("status", httpStatus),
		zap.String("response", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

func (l *ZapLogger) redact(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	for _, param := range l.redactedParams {
		if query.Has(param) {
			query.Set(param, "***")
		}
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
