//go:build !filelog
// +build !filelog

package build

import "os"

// LoggingType is the currently active LogType for this build. The
// "filelog" build tag selects a file-only writer instead, via
// log_filelog.go.
const LoggingType = LogTypeStdOut

// Write implements io.Writer for the non-filelog build: every write
// goes to stdout, and to the rotator pipe once InitLogRotator has
// attached one.
func (w *LogWriter) Write(b []byte) (int, error) {
	os.Stdout.Write(b)
	w.Lock()
	pipe := w.RotatorPipe
	w.Unlock()
	if pipe != nil {
		return pipe.Write(b)
	}
	return len(b), nil
}
