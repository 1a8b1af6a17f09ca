package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// LogType identifies a logging destination. LoggingType in log.go and
// log_filelog.go is LogTypeStdOut under either value of the "filelog"
// build tag; the tag changes where Write sends output, not LoggingType.
type LogType int

const (
	// LogTypeStdOut writes to standard out only.
	LogTypeStdOut LogType = iota

	// LogTypeNone disables logging entirely.
	LogTypeNone
)

// LogWriter wraps the destination a log line is routed to. Which
// destinations Write actually touches depends on the filelog build
// tag: see log.go and log_filelog.go.
type LogWriter struct {
	sync.Mutex
	RotatorPipe *io.PipeWriter
}

// RotatingLogWriter wraps a rotating log file and hands out per-subsystem
// loggers backed by it, tracking them so their levels can be changed
// together after the fact.
type RotatingLogWriter struct {
	sync.Mutex

	logWriter        *LogWriter
	backend          *slog.Backend
	subsystemLoggers map[string]slog.Logger
	logRotator       *rotator.Rotator
}

// NewRotatingLogWriter returns a RotatingLogWriter that writes to stdout
// until InitLogRotator attaches a file.
func NewRotatingLogWriter() *RotatingLogWriter {
	logWriter := &LogWriter{}
	return &RotatingLogWriter{
		logWriter:        logWriter,
		backend:          slog.NewBackend(logWriter),
		subsystemLoggers: make(map[string]slog.Logger),
	}
}

// InitLogRotator opens (creating parent directories as needed) logFile
// for rotating writes, sized maxFileSize megabytes with at most
// maxFiles old files retained, and starts routing log output to it in
// addition to whatever log.go/log_filelog.go already sends there.
func (r *RotatingLogWriter) InitLogRotator(logFile string, maxFileSize, maxFiles int) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return fmt.Errorf("build: failed to create log directory: %w", err)
	}

	rot, err := rotator.New(logFile, int64(maxFileSize*1024), false, maxFiles)
	if err != nil {
		return fmt.Errorf("build: failed to create file rotator: %w", err)
	}

	pr, pw := io.Pipe()
	go rot.Run(pr)

	r.logRotator = rot
	r.logWriter.Lock()
	r.logWriter.RotatorPipe = pw
	r.logWriter.Unlock()
	return nil
}

// GenSubLogger returns a new logger backed by this writer, tagged with
// subsystem.
func (r *RotatingLogWriter) GenSubLogger(subsystem string) slog.Logger {
	return r.backend.Logger(subsystem)
}

// RegisterSubLogger records logger as the active logger for subsystem
// so SetLogLevels can reach it later.
func (r *RotatingLogWriter) RegisterSubLogger(subsystem string, logger slog.Logger) {
	r.Lock()
	defer r.Unlock()
	r.subsystemLoggers[subsystem] = logger
}

// SetLogLevel sets the log level for a single registered subsystem.
func (r *RotatingLogWriter) SetLogLevel(subsystem, level string) {
	r.Lock()
	logger, ok := r.subsystemLoggers[subsystem]
	r.Unlock()
	if !ok {
		return
	}
	lvl, _ := slog.LevelFromString(level)
	logger.SetLevel(lvl)
}

// SetLogLevels sets level on every registered subsystem logger.
func (r *RotatingLogWriter) SetLogLevels(level string) {
	lvl, _ := slog.LevelFromString(level)
	r.Lock()
	defer r.Unlock()
	for _, logger := range r.subsystemLoggers {
		logger.SetLevel(lvl)
	}
}

// Close shuts down the underlying rotator, if one was attached.
func (r *RotatingLogWriter) Close() error {
	if r.logRotator == nil {
		return nil
	}
	return r.logRotator.Close()
}

// NewSubLogger returns a logger for subsystem. Before the root
// RotatingLogWriter exists (during early package init) genLogger is
// nil and the returned logger discards everything; SetupLoggers
// replaces it once the root writer is ready.
func NewSubLogger(subsystem string, genLogger func(string) slog.Logger) slog.Logger {
	if genLogger == nil {
		return slog.Disabled
	}
	return genLogger(subsystem)
}
