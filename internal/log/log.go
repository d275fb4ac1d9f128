// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "TSPIN_LOG"

var traceEnabled bool

// InitLogger sets up Apex with a custom handler writing to stderr and a log
// level from the TSPIN_LOG env variable. Stdout is left to command output.
func InitLogger() {
	InitLoggerTo(os.Stderr, os.Getenv(LevelEnv))
}

// InitLoggerTo is InitLogger with an explicit destination and level name.
func InitLoggerTo(w io.Writer, level string) {
	envLevel := strings.ToLower(strings.TrimSpace(level))
	traceEnabled = envLevel == "trace"
	log.SetHandler(&CustomHandler{Writer: w})
	log.SetLevel(ParseLevel(envLevel))
}

// ParseLevel maps a TSPIN_LOG value to an Apex level. Unknown and empty
// values mean error. Trace maps to debug; Tracef adds its own marker.
func ParseLevel(name string) log.Level {
	switch strings.ToLower(name) {
	case "trace", "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.ErrorLevel
	}
}

// CustomHandler formats log messages as "timestamp level message fields".
type CustomHandler struct {
	Writer io.Writer
	mu     sync.Mutex
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := e.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	message := e.Message
	level := "?"
	if strings.HasPrefix(message, "TRACE: ") {
		level = "T"
		message = message[7:]
	} else {
		switch e.Level {
		case log.DebugLevel:
			level = "D"
		case log.InfoLevel:
			level = "I"
		case log.WarnLevel:
			level = "W"
		case log.ErrorLevel:
			level = "E"
		case log.FatalLevel:
			level = "F"
		}
	}

	var fields strings.Builder
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&fields, " %s=%v", name, e.Fields.Get(name))
	}

	w := h.Writer
	if w == nil {
		w = os.Stderr
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(w, "%s %s %s%s\n", timestamp.Format("2006-01-02 15:04:05"), level, message, fields.String())
	return err
}

// Tracef logs at Trace level (below Debug).
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug("TRACE: " + fmt.Sprintf(format, args...))
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
