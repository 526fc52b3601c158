package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uilive"
	"github.com/pkg/errors"
)

const MainColor = color.FgBlue
const OutputColor = color.FgGreen
const BadColor = color.FgRed

// Level is the minimum severity written by the subsystem logger.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts the names printed by Level.String in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "", "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	}
	return LevelInfo, errors.Errorf("unknown log level %q", s)
}

var logger *slog.Logger

// Init sets up the subsystem logger. It should be called once at startup.
func Init(level Level, output io.Writer) {
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{Level: level.slogLevel()})
	logger = slog.New(handler)
}

func logInternal(level Level, subsystem string, err error, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	if logger == nil {
		fmt.Fprintf(os.Stderr, "[LOGGING_ERROR] logger not initialised: %s [%s] %s\n", time.Now().Format(time.RFC3339), level, msg)
		return
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.LogAttrs(context.Background(), level.slogLevel(), msg, attrs...)
}

func Debug(subsystem string, format string, args ...any) {
	logInternal(LevelDebug, subsystem, nil, format, args...)
}

func Info(subsystem string, format string, args ...any) {
	logInternal(LevelInfo, subsystem, nil, format, args...)
}

func Warn(subsystem string, format string, args ...any) {
	logInternal(LevelWarn, subsystem, nil, format, args...)
}

func Error(subsystem string, err error, format string, args ...any) {
	logInternal(LevelError, subsystem, err, format, args...)
}

// New returns a live writer that only redraws when flushed.
func New(out io.Writer) *uilive.Writer {
	writer := uilive.New()
	writer.Out = out
	writer.RefreshInterval = time.Hour
	return writer
}

func FPrintf(writer io.Writer, c color.Attribute, format string, a ...any) (int, error) {
	return color.New(c).Fprintf(writer, format, a...)
}

func FPrintln(writer io.Writer, c color.Attribute, ln string) (read int, err error) {
	read, err = color.New(c).Fprintln(writer, ln)
	if err != nil {
		return read, err
	}

	if uiliveWriter, ok := writer.(*uilive.Writer); ok {
		err = uiliveWriter.Flush()
		return read, err
	}

	return read, err
}
