package transport

import (
	"strings"

	"github.com/rs/zerolog"
)

// restyLogger routes resty's internal messages to zerolog
type restyLogger struct {
	logger zerolog.Logger
}

func newRestyLogger(logger zerolog.Logger) *restyLogger {
	return &restyLogger{logger: logger.With().Str("component", "resty").Logger()}
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msgf(strings.TrimSpace(format), v...)
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(strings.TrimSpace(format), v...)
}
