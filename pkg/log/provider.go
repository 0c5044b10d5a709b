package log

import (
	"context"
	"log/slog"
	"sync"
)

// slogLogger adapts a *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

func (s *slogLogger) Debug(msg string, fields ...any) { s.logger.Debug(msg, fields...) }
func (s *slogLogger) Info(msg string, fields ...any)  { s.logger.Info(msg, fields...) }
func (s *slogLogger) Warn(msg string, fields ...any)  { s.logger.Warn(msg, fields...) }
func (s *slogLogger) Error(msg string, fields ...any) { s.logger.Error(msg, fields...) }

func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: s.logger.With(fields...)}
}

func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, slog.Level(level))
}

// slogProvider is the default LoggerProvider, backed by the process-wide
// slog default logger configured via SetupLogger.
type slogProvider struct{}

func (p *slogProvider) GetLogger() Logger {
	return &slogLogger{logger: slog.Default()}
}

func (p *slogProvider) GetLoggerWithName(name string) Logger {
	return &slogLogger{logger: slog.Default().With(ComponentKey, name)}
}

// SetLevel reinstalls the default handler at the given minimum level.
func (p *slogProvider) SetLevel(level Level) {
	switch {
	case level <= LevelDebug:
		SetupLogger("debug")
	case level <= LevelInfo:
		SetupLogger("info")
	case level <= LevelWarn:
		SetupLogger("warn")
	default:
		SetupLogger("error")
	}
}

var (
	providerMutex sync.RWMutex
	provider      LoggerProvider = &slogProvider{}
)

// SetProvider replaces the package-level LoggerProvider.
// Passing nil restores the default slog-backed provider.
// Intended for tests that need to capture log output.
func SetProvider(p LoggerProvider) {
	providerMutex.Lock()
	defer providerMutex.Unlock()
	if p == nil {
		p = &slogProvider{}
	}
	provider = p
}

// GetLogger returns the default logger from the current provider.
func GetLogger() Logger {
	providerMutex.RLock()
	defer providerMutex.RUnlock()
	return provider.GetLogger()
}

// GetLoggerWithName returns a component-scoped logger from the current provider.
func GetLoggerWithName(name string) Logger {
	providerMutex.RLock()
	defer providerMutex.RUnlock()
	return provider.GetLoggerWithName(name)
}
