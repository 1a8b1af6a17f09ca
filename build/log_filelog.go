// +build filelog

package build

import "os"

var logf *os.File

// LoggingType is LogTypeStdOut in this build as well: LogType has no
// file-only value. Output itself goes only to a plain file, with no
// stdout mirroring (see Write).
const LoggingType = LogTypeStdOut

// Write implements io.Writer for the filelog build: every write goes
// to the process-lifetime log file opened in init, bypassing the
// rotator entirely.
func (w *LogWriter) Write(b []byte) (int, error) {
	return logf.Write(b)
}

func init() {
	var err error
	logf, err = os.Create("dcrsidechain.log")
	if err != nil {
		panic(err)
	}
}
