package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"launchpad/internal/errors"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

var (
	mu      sync.Mutex
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured key/value pair attached to a log line
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus entry so fields can be chained without touching
// the shared base logger.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
	level logrus.Level
}

type options struct {
	out   io.Writer
	json  bool
	file  string
	level logrus.Level
}

// Option configures a Logger
type Option func(*options)

// WithOutput sends log lines to w instead of stderr
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithJSON switches to logrus's JSON formatter
func WithJSON() Option {
	return func(o *options) { o.json = true }
}

// WithFile additionally appends log lines to the file at path
func WithFile(path string) Option {
	return func(o *options) { o.file = path }
}

// WithLevel sets the minimum level ("debug", "info", "warn", "error").
// Unknown names keep the default.
func WithLevel(level string) Option {
	return func(o *options) {
		if l, err := logrus.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

// NewLogger builds a logger. Output defaults to stderr so log lines never
// mix with a shell's own stdout.
func NewLogger(opts ...Option) *Logger {
	o := options{out: os.Stderr, level: logrus.InfoLevel}
	for _, opt := range opts {
		opt(&o)
	}

	base := logrus.New()
	l := &Logger{level: o.level}

	out := o.out
	if o.file != "" {
		f, err := os.OpenFile(o.file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: cannot open %s: %v\n", o.file, err)
		} else {
			l.file = f
			out = io.MultiWriter(o.out, f)
		}
	}
	base.SetOutput(out)

	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			DisableQuote:    true,
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
	}

	if isDebug {
		base.SetLevel(logrus.DebugLevel)
	} else {
		base.SetLevel(o.level)
	}

	l.entry = logrus.NewEntry(base)
	return l
}

// Configure replaces the package-level logger
func Configure(opts ...Option) {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil && logger.file != nil {
		logger.file.Close()
		logger.file = nil
	}
	logger = NewLogger(opts...)
}

// Close releases the log file, if any
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logger.file != nil {
		logger.file.Close()
		logger.file = nil
	}
}

// SetDebug toggles debug output on the package-level logger
func SetDebug(debug bool) {
	mu.Lock()
	defer mu.Unlock()
	isDebug = debug
	if debug {
		logger.entry.Logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.entry.Logger.SetLevel(logger.level)
	}
}

// With returns a child logger carrying the given fields
func (l *Logger) With(fields ...Field) *Logger {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(lf), file: l.file, level: l.level}
}

// WithContext attaches ctx to every line the child logger writes
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	return &Logger{entry: l.entry.WithContext(ctx), file: l.file, level: l.level}
}

// WithError attaches err and whatever the application error types know about it
func (l *Logger) WithError(err error) *Logger {
	return l.With(errorFields(err)...)
}

func (l *Logger) Info(msg string)                            { l.entry.Info(msg) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warn(msg string)                            { l.entry.Warn(msg) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Error(msg string)                           { l.entry.Error(msg) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l *Logger) Debug(msg string)                           { l.entry.Debug(msg) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

func current() *Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// LogWithFields returns the package-level logger with fields attached
func LogWithFields(fields ...Field) *Logger {
	return current().With(fields...)
}

// LogWithError returns the package-level logger with error fields attached
func LogWithError(err error) *Logger {
	return current().WithError(err)
}

// LogError logs err at error level with a message
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

func Info(msg string)                            { current().Info(msg) }
func Infof(format string, args ...interface{})  { current().Infof(format, args...) }
func Warn(msg string)                            { current().Warn(msg) }
func Warnf(format string, args ...interface{})  { current().Warnf(format, args...) }
func Error(msg string)                           { current().Error(msg) }
func Errorf(format string, args ...interface{}) { current().Errorf(format, args...) }
func Debug(msg string)                           { current().Debug(msg) }
func Debugf(format string, args ...interface{}) { current().Debugf(format, args...) }

func errorFields(err error) []Field {
	if err == nil {
		return []Field{F("error", "<nil>")}
	}
	fields := []Field{F("error", err.Error()), F("error_kind", int(errors.KindOf(err)))}

	var shellErr *errors.ShellError
	if errors.As(err, &shellErr) && shellErr.Shell() != "" {
		fields = append(fields, F("shell", shellErr.Shell()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	var inputErr *errors.InputError
	if errors.As(err, &inputErr) && inputErr.Token() != "" {
		fields = append(fields, F("token", inputErr.Token()))
	}
	return fields
}
