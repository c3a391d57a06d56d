// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"os"

	"github.com/rs/zerolog"
)

// managerLogger wraps a zerolog.Logger. It only exists on a Manager
// configured with WithLogger or WithDebugLogging; nil is the default and
// every call site checks for it first, the same "logging is optional"
// discipline the debug-tagged logger this package grew out of used.
type managerLogger struct {
	log zerolog.Logger
}

// WithLogger attaches an arbitrary zerolog.Logger to the manager, used
// to funnel its structured events into an application's own sink.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) { m.logger = &managerLogger{log: l} }
}

// WithDebugLogging attaches a console-writer zerolog.Logger at debug
// level, the quick option for local troubleshooting.
func WithDebugLogging() Option {
	return func(m *Manager) {
		l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		m.logger = &managerLogger{log: l}
	}
}

func logError(m *Manager, err error) {
	m.logger.log.Error().Err(err).
		Int("nodes_used", m.pool.used()).
		Int("nodes_size", m.pool.size()).
		Msg("mvdd manager error")
}

func (m *Manager) logDebugf(format string, args ...interface{}) {
	if m.logger == nil {
		return
	}
	m.logger.log.Debug().Msgf(format, args...)
}
