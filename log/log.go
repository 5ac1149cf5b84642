// Package log provides a leveled, structured logger for the whole
// repository, backed by zerolog. It must be initialized with Init before
// use; the default logger writes human-readable output to stderr.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Log levels, as accepted by Init.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
	LogLevelFatal = "fatal"
)

const logTestWriterName = "_testWriter"

var (
	// log defaults to stderr at info level until Init is called.
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339Nano}).
		Level(zerolog.InfoLevel).With().Timestamp().Logger()
	level = LogLevelInfo

	// logTestWriter is the io.Writer used when Init is given
	// logTestWriterName as output; used by tests and benchmarks.
	logTestWriter io.Writer = io.Discard

	// panicOnInvalidChars defaults to the LOG_PANIC_ON_INVALIDCHARS env
	// var; when true every emitted log line is checked for invalid UTF-8
	// and the process panics on the first occurrence. Only meant for
	// tests, since the check is expensive.
	panicOnInvalidChars = strings.ToLower(os.Getenv("LOG_PANIC_ON_INVALIDCHARS")) == "true"
)

// checkMsg panics on log lines with invalid UTF-8 when the check is
// enabled. The check runs before zerolog's encoder, which would silently
// replace the offending bytes otherwise.
func checkMsg(msg string) string {
	if panicOnInvalidChars && !utf8.ValidString(msg) {
		panic(fmt.Sprintf("log line with invalid chars: %q", msg))
	}
	return msg
}

// Init initializes the logger with the given level. The output parameter
// accepts "stdout", "stderr" or a file path. If errorOutput is not nil,
// warning and error messages are duplicated to it.
func Init(logLevel, output string, errorOutput io.Writer) {
	var out io.Writer
	switch output {
	case "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	case logTestWriterName:
		out = logTestWriter
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Sprintf("cannot create log output: %v", err))
		}
		out = f
	}
	out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339Nano}
	if errorOutput != nil {
		out = zerolog.MultiLevelWriter(out, errLevelWriter{errorOutput})
	}
	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		panic(fmt.Sprintf("invalid log level %q: %v", logLevel, err))
	}
	level = logLevel
	log = zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger()
}

// errLevelWriter duplicates warn and higher entries to a secondary writer.
type errLevelWriter struct {
	w io.Writer
}

func (w errLevelWriter) Write(p []byte) (int, error) { return len(p), nil }

func (w errLevelWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l >= zerolog.WarnLevel {
		return w.w.Write(p)
	}
	return len(p), nil
}

// Level returns the current log level, as set by Init.
func Level() string { return level }

// Logger returns the underlying zerolog.Logger.
func Logger() *zerolog.Logger { return &log }

func withKeyValues(ev *zerolog.Event, keyvalues []any) *zerolog.Event {
	for i := 0; i+1 < len(keyvalues); i += 2 {
		key, ok := keyvalues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keyvalues[i])
		}
		ev = ev.Interface(key, keyvalues[i+1])
	}
	return ev
}

func Debug(args ...any) { log.Debug().Msg(checkMsg(fmt.Sprint(args...))) }
func Info(args ...any)  { log.Info().Msg(checkMsg(fmt.Sprint(args...))) }
func Warn(args ...any)  { log.Warn().Msg(checkMsg(fmt.Sprint(args...))) }
func Error(args ...any) { log.Error().Msg(checkMsg(fmt.Sprint(args...))) }

func Fatal(args ...any) {
	log.Fatal().Msg(checkMsg(fmt.Sprint(args...)))
	// in case the logger level filtered the fatal entry out
	os.Exit(1)
}

func Debugf(template string, args ...any) { log.Debug().Msg(checkMsg(fmt.Sprintf(template, args...))) }
func Infof(template string, args ...any)  { log.Info().Msg(checkMsg(fmt.Sprintf(template, args...))) }
func Warnf(template string, args ...any)  { log.Warn().Msg(checkMsg(fmt.Sprintf(template, args...))) }
func Errorf(template string, args ...any) { log.Error().Msg(checkMsg(fmt.Sprintf(template, args...))) }

func Fatalf(template string, args ...any) {
	log.Fatal().Msg(checkMsg(fmt.Sprintf(template, args...)))
	os.Exit(1)
}

// The w variants take a message followed by alternating key-value pairs.
func Debugw(msg string, keyvalues ...any) { withKeyValues(log.Debug(), keyvalues).Msg(checkMsg(msg)) }
func Infow(msg string, keyvalues ...any)  { withKeyValues(log.Info(), keyvalues).Msg(checkMsg(msg)) }
func Warnw(msg string, keyvalues ...any)  { withKeyValues(log.Warn(), keyvalues).Msg(checkMsg(msg)) }
func Errorw(err error, msg string) {
	log.Error().Err(err).Msg(msg)
}
