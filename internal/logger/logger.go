// Package logger provides the structured logger used across skillpack.
// Logs go to stderr so they never mix with the installer's stdout summary.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// G is a convenience alias for GetLogger.
	G = GetLogger
	// L is the global logger entry used when no logger is found in context.
	L = logrus.NewEntry(newLogger())
)

type loggerKey struct{}

// WithLogger attaches a logger entry to the given context.
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger.WithContext(ctx))
}

// GetLogger retrieves the logger entry from the context, falling back to L.
func GetLogger(ctx context.Context) *logrus.Entry {
	if logger, ok := ctx.Value(loggerKey{}).(*logrus.Entry); ok {
		return logger
	}
	return L.WithContext(ctx)
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	setLoggerFormat(l, "fmt")
	return l
}

func setLoggerFormat(logger *logrus.Logger, format string) {
	switch format {
	case "json":
		logger.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "logLevel",
				logrus.FieldKeyMsg:   "message",
			},
			TimestampFormat: time.RFC3339Nano,
		}
	case "text", "fmt":
		fallthrough
	default:
		logger.Formatter = &logrus.TextFormatter{
			TimestampFormat: time.RFC3339Nano,
			FullTimestamp:   true,
		}
	}
}

// SetLogLevel sets the log level for the global logger.
func SetLogLevel(level string) error {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	L.Logger.SetLevel(logLevel)
	return nil
}

// SetLogFormat sets the log format ("fmt" or "json") for the global logger.
func SetLogFormat(format string) {
	setLoggerFormat(L.Logger, format)
}

// SetLogOutput sets the output destination for the global logger.
func SetLogOutput(w io.Writer) {
	L.Logger.SetOutput(w)
}
