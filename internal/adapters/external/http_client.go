package external

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"skycast.app/internal/ports"
)

const (
	defaultRequestTimeout = 10 * time.Second
	userAgent             = "skycast/1.0"
)

// newRestyClient builds a client that makes exactly one attempt per request
func newRestyClient(baseURL string, timeout time.Duration, logger ports.Logger) *resty.Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		SetRetryCount(0).
		SetLogger(restyLogger{logger: logger})
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// restyLogger routes resty's internal messages to the application logger
type restyLogger struct {
	logger ports.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...), ports.F("component", "resty"))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...), ports.F("component", "resty"))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), ports.F("component", "resty"))
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...ports.Field) {}
func (nopLogger) Info(string, ...ports.Field)  {}
func (nopLogger) Warn(string, ...ports.Field)  {}
func (nopLogger) Error(string, ...ports.Field) {}
