package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/rook-computer/knobkit/internal/config"
)

// Logger is the component-tagged logger passed to every package.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes plain timestamped lines.
type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}

// OpenDebugLogger opens the debug log at path in the given format. The
// returned close function flushes and releases the log.
func OpenDebugLogger(path, format string) (Logger, func(), error) {
	switch format {
	case config.LogFormatPlain:
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("debug log %s: %w", path, err)
		}
		return NewFileLogger(f), func() { _ = f.Close() }, nil
	case config.LogFormatZap, "":
		zl, err := NewZapLogger(path)
		if err != nil {
			return nil, nil, err
		}
		return zl, func() { _ = zl.Sync() }, nil
	default:
		return nil, nil, fmt.Errorf("debug log %s: unknown format %q", path, format)
	}
}

// ZapLogger sends log lines to zap with the component as a structured field.
type ZapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger logs at debug level and above to path.
func NewZapLogger(path string) (*ZapLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("debug log %s: %w", path, err)
	}
	return WrapZap(l), nil
}

func WrapZap(l *zap.Logger) *ZapLogger { return &ZapLogger{s: l.Sugar()} }

func (l *ZapLogger) Infof(component string, format string, args ...interface{}) {
	l.s.With("component", component).Infof(format, args...)
}

func (l *ZapLogger) Errorf(component string, format string, args ...interface{}) {
	l.s.With("component", component).Errorf(format, args...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error { return l.s.Sync() }
