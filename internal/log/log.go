// Package log provides leveled, categorized debug logging.
//
// A Bubble Tea program owns stdout, so entries go to a file opened with
// tea.LogToFile. Logging is off until Init is called; every call before that
// is a no-op.
package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
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

// ParseLevel maps a case-insensitive level name to a Level.
// Unknown names report false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelDebug, false
	}
}

// Category groups related log messages.
type Category string

const (
	CatUI   Category = "ui"   // editor model updates and rendering
	CatLang Category = "lang" // tokenizing and parse-tree caching
	CatBidi Category = "bidi" // directional range recomputation
	CatCLI  Category = "cli"  // demo command and configuration
)

type logger struct {
	mu       sync.Mutex
	w        io.Writer
	minLevel Level
	now      func() time.Time
}

var (
	mu      sync.RWMutex
	current *logger
)

// Init starts logging to path and returns a function that closes the file.
func Init(path string, minLevel Level) (func(), error) {
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("open debug log %q: %w", path, err)
	}
	SetOutput(f, minLevel)
	return func() {
		SetOutput(nil, minLevel)
		_ = f.Close()
	}, nil
}

// SetOutput directs log entries to w. A nil w disables logging.
func SetOutput(w io.Writer, minLevel Level) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		current = nil
		return
	}
	current = &logger{w: w, minLevel: minLevel, now: time.Now}
}

// Enabled reports whether entries at level would be written.
func Enabled(level Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return current != nil && level >= current.minLevel
}

func Debug(cat Category, msg string, fields ...any) { write(LevelDebug, cat, msg, fields...) }

func Info(cat Category, msg string, fields ...any) { write(LevelInfo, cat, msg, fields...) }

func Warn(cat Category, msg string, fields ...any) { write(LevelWarn, cat, msg, fields...) }

func Error(cat Category, msg string, fields ...any) { write(LevelError, cat, msg, fields...) }

// ErrorErr logs err under the "error" key.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l == nil || level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, format(l.now(), level, cat, msg, fields))
}

// format renders one entry:
//
//	2026-01-02T15:04:05 [DEBUG] [bidi] recomputed ranges=2 version=3
func format(ts time.Time, level Level, cat Category, msg string, fields []any) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] [%s] %s", ts.Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&sb, " %v=<missing>", fields[len(fields)-1])
	}
	sb.WriteByte('\n')
	return sb.String()
}
