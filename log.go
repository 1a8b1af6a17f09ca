package dcrsidechain

import (
	"github.com/decred/slog"

	"github.com/decred/dcrsidechain/build"
	"github.com/decred/dcrsidechain/input"
	"github.com/decred/dcrsidechain/ledger"
	"github.com/decred/dcrsidechain/rules"
	"github.com/decred/dcrsidechain/wire"
)

// replaceableLogger is a thin wrapper around a logger that lets the
// package-level logger variables below be replaced by SetupLoggers
// without requiring every call site to go through a pointer.
type replaceableLogger struct {
	slog.Logger
	subsystem string
}

// Until SetupLoggers runs, every logger here discards its output.
// cmd/sidechainctl creates the root build.RotatingLogWriter during
// startup, calls InitLogRotator on it unless file logging is disabled,
// and then passes it to SetupLoggers.
var (
	pkgLoggers []*replaceableLogger

	addPkgLogger = func(subsystem string) *replaceableLogger {
		l := &replaceableLogger{
			Logger:    build.NewSubLogger(subsystem, nil),
			subsystem: subsystem,
		}
		pkgLoggers = append(pkgLoggers, l)
		return l
	}

	// wireLog and ldgrLog are package-level loggers of this package; no
	// code here logs through them yet. The per-package loggers are
	// wired separately in SetupLoggers.
	wireLog = addPkgLogger("WIRE")
	ldgrLog = addPkgLogger("LEDG")
)

// SetupLoggers initializes every package-level logger variable in this
// module against root, then wires each subsystem's own UseLogger hook.
func SetupLoggers(root *build.RotatingLogWriter) {
	for _, l := range pkgLoggers {
		l.Logger = build.NewSubLogger(l.subsystem, root.GenSubLogger)
		SetSubLogger(root, l.subsystem, l.Logger)
	}

	AddSubLogger(root, "WIRE", wire.UseLogger)
	AddSubLogger(root, "AUTH", input.UseLogger)
	AddSubLogger(root, "RULE", rules.UseLogger)
	AddSubLogger(root, "LEDG", ledger.UseLogger)
}

// AddSubLogger creates and registers the logger for one subsystem,
// then hands it to every useLogger hook supplied for that subsystem.
func AddSubLogger(root *build.RotatingLogWriter, subsystem string,
	useLoggers ...func(slog.Logger)) {

	logger := build.NewSubLogger(subsystem, root.GenSubLogger)
	SetSubLogger(root, subsystem, logger, useLoggers...)
}

// SetSubLogger registers logger as the handler for subsystem and
// informs every useLogger hook supplied for it.
func SetSubLogger(root *build.RotatingLogWriter, subsystem string,
	logger slog.Logger, useLoggers ...func(slog.Logger)) {

	root.RegisterSubLogger(subsystem, logger)
	for _, useLogger := range useLoggers {
		useLogger(logger)
	}
}

// logClosure defers formatting an expensive log message until the
// logging level actually warrants it.
type logClosure func() string

func (c logClosure) String() string {
	return c()
}

func newLogClosure(c func() string) logClosure {
	return logClosure(c)
}
