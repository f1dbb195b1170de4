package libpack_logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	LEVEL_DEBUG = iota
	LEVEL_INFO
	LEVEL_WARN
	LEVEL_ERROR
	LEVEL_FATAL
)

const defaultMinLevel = LEVEL_INFO

var LevelNames = map[int]string{
	LEVEL_DEBUG: "debug",
	LEVEL_INFO:  "info",
	LEVEL_WARN:  "warn",
	LEVEL_ERROR: "error",
	LEVEL_FATAL: "fatal",
}

var (
	fieldNamesMu sync.RWMutex
	fieldNames   = map[string]string{
		"timestamp": "timestamp",
		"level":     "level",
		"message":   "message",
		"caller":    "caller",
	}
)

type LogMessage struct {
	Pairs   map[string]any
	Message string
}

func (m *LogMessage) String() string {
	return m.Message
}

// Logger writes one JSON object per message. Level, message and timestamp keys are
// written explicitly so they can be renamed with SetFieldName.
type Logger struct {
	output      io.Writer
	zl          zerolog.Logger
	format      string
	mu          sync.Mutex
	minLogLevel int
	showCaller  bool
}

func New() *Logger {
	l := &Logger{
		output:      os.Stdout,
		format:      time.RFC3339,
		minLogLevel: defaultMinLevel,
	}
	l.zl = zerolog.New(l.output)
	return l
}

func (l *Logger) SetOutput(output io.Writer) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = output
	l.zl = zerolog.New(output)
	return l
}

func (l *Logger) SetFormat(format string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.format = format
	return l
}

func (l *Logger) SetMinLogLevel(level int) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLogLevel = level
	return l
}

func (l *Logger) SetShowCaller(show bool) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.showCaller = show
	return l
}

// SetFieldName renames one of the fixed keys: timestamp, level, message or caller.
func (l *Logger) SetFieldName(field, name string) *Logger {
	fieldNamesMu.Lock()
	defer fieldNamesMu.Unlock()
	if _, ok := fieldNames[field]; ok && name != "" {
		fieldNames[field] = name
	}
	return l
}

func fieldName(field string) string {
	fieldNamesMu.RLock()
	defer fieldNamesMu.RUnlock()
	return fieldNames[field]
}

// GetLogLevel maps a LOG_LEVEL string onto a level constant, defaulting to info.
func GetLogLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LEVEL_DEBUG
	case "info":
		return LEVEL_INFO
	case "warn", "warning":
		return LEVEL_WARN
	case "error":
		return LEVEL_ERROR
	case "fatal", "critical":
		return LEVEL_FATAL
	default:
		return defaultMinLevel
	}
}

func (l *Logger) shouldLog(level int) bool {
	return level >= l.minLogLevel
}

func (l *Logger) log(level int, m *LogMessage) {
	if m == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.shouldLog(level) {
		return
	}

	event := l.zl.Log().
		Str(fieldName("timestamp"), time.Now().Format(l.format)).
		Str(fieldName("level"), LevelNames[level])
	if l.showCaller {
		event = event.Str(fieldName("caller"), caller(3))
	}
	for k, v := range m.Pairs {
		switch val := v.(type) {
		case string:
			event = event.Str(k, val)
		case int:
			event = event.Int(k, val)
		case int64:
			event = event.Int64(k, val)
		case float64:
			event = event.Float64(k, val)
		case bool:
			event = event.Bool(k, val)
		case error:
			event = event.Str(k, val.Error())
		default:
			event = event.Interface(k, val)
		}
	}
	event.Str(fieldName("message"), m.Message).Send()
}

func (l *Logger) Debug(m *LogMessage) { l.log(LEVEL_DEBUG, m) }

func (l *Logger) Info(m *LogMessage) { l.log(LEVEL_INFO, m) }

func (l *Logger) Warn(m *LogMessage) { l.log(LEVEL_WARN, m) }

// Warning is an alias of Warn.
func (l *Logger) Warning(m *LogMessage) { l.log(LEVEL_WARN, m) }

func (l *Logger) Error(m *LogMessage) { l.log(LEVEL_ERROR, m) }

// Fatal logs at the highest level. It does not exit; callers decide how to stop.
func (l *Logger) Fatal(m *LogMessage) { l.log(LEVEL_FATAL, m) }

// Critical is an alias of Fatal.
func (l *Logger) Critical(m *LogMessage) { l.log(LEVEL_FATAL, m) }

func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	if idx := strings.LastIndex(file, "/"); idx >= 0 {
		if prev := strings.LastIndex(file[:idx], "/"); prev >= 0 {
			file = file[prev+1:]
		}
	}
	return fmt.Sprintf("%s:%d", file, line)
}
