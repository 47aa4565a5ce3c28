package pkg

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/ansel1/merry"
	"github.com/powerman/structlog"
)

// LogMerryStacktrace logs the error's captured stacktrace, one frame
// per line. Errors without a merry stack log nothing.
func LogMerryStacktrace(log *structlog.Logger, e error) {
	for _, pc := range merry.Stack(e) {
		fnc := runtime.FuncForPC(pc)
		if fnc == nil {
			continue
		}
		file, line := fnc.FileLine(pc)
		log.PrintErr(fmt.Sprintf("\t%s:%d %s", file, line, filepath.Base(fnc.Name())))
	}
}
