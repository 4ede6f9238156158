package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"game-prototype/internal/config"
)

// historySize is how many recent lines History keeps for the on-screen log.
const historySize = 64

// Logger is a zap logger writing to the console, an optional file, and an in-memory history.
type Logger struct {
	*zap.Logger
	history *History
	file    *os.File
}

// New builds a logger from cfg. Unknown levels fall back to info. When cfg.File is set its
// directory is created and entries are appended to it.
func New(cfg config.LoggingConfig) (*Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	enabled := zap.NewAtomicLevelAt(level)

	var consoleEnc zapcore.Encoder
	if cfg.Format == "json" {
		consoleEnc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		ec.ConsoleSeparator = "  "
		consoleEnc = zapcore.NewConsoleEncoder(ec)
	}

	l := &Logger{history: NewHistory(historySize)}
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEnc, zapcore.Lock(os.Stderr), enabled),
		zapcore.NewCore(plainEncoder("15:04:05"), zapcore.AddSync(l.history), enabled),
	}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, errors.Wrap(err, "create log dir")
		}
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		l.file = f
		cores = append(cores, zapcore.NewCore(plainEncoder("2006-01-02 15:04:05"), zapcore.AddSync(f), enabled))
	}

	l.Logger = zap.New(zapcore.NewTee(cores...))
	return l, nil
}

func plainEncoder(timeLayout string) zapcore.Encoder {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	ec.ConsoleSeparator = " "
	return zapcore.NewConsoleEncoder(ec)
}

// History returns the in-memory line buffer.
func (l *Logger) History() *History {
	return l.history
}

// Close flushes the logger and closes the log file.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// History keeps the most recent log lines in memory. It is an io.Writer fed one entry per Write.
type History struct {
	mu    sync.Mutex
	lines []string
	max   int
}

// NewHistory returns a history holding at most max lines.
func NewHistory(max int) *History {
	return &History{max: max}
}

func (h *History) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	h.mu.Lock()
	h.lines = append(h.lines, line)
	if over := len(h.lines) - h.max; over > 0 {
		h.lines = append(h.lines[:0], h.lines[over:]...)
	}
	h.mu.Unlock()
	return len(p), nil
}

// Lines returns a copy of the stored lines, oldest first.
func (h *History) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}

// Last returns up to n of the newest lines, oldest first.
func (h *History) Last(n int) []string {
	lines := h.Lines()
	if n < len(lines) {
		lines = lines[len(lines)-n:]
	}
	return lines
}
