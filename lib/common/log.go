package common

import (
	"os"

	logging "github.com/inconshreveable/log15"
	isatty "github.com/mattn/go-isatty"
)

var (
	DefaultLogLevel   logging.Lvl     = logging.LvlInfo
	DefaultLogHandler logging.Handler = logging.StreamHandler(os.Stdout, logging.TerminalFormat())
)

// SetLogging set the logger
func SetLogging(logger logging.Logger, level logging.Lvl, handler logging.Handler) {
	logger.SetHandler(logging.LvlFilterHandler(level, handler))
}

// NewLogHandler returns a handler writing to `output`; an empty `output`
// means stdout, formatted for humans on a terminal and as JSON lines
// otherwise.
func NewLogHandler(output string) (logging.Handler, error) {
	if len(output) > 0 {
		return logging.FileHandler(output, logging.JsonFormat())
	}

	var formatter logging.Format
	if isatty.IsTerminal(os.Stdout.Fd()) {
		formatter = logging.TerminalFormat()
	} else {
		formatter = logging.JsonFormatEx(false, true)
	}

	return logging.StreamHandler(os.Stdout, formatter), nil
}
