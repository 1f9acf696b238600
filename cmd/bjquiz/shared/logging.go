package shared

import (
	"io"

	"github.com/charmbracelet/log"
)

// SetupLogger returns a logger writing to w at the named level. Unknown
// levels fall back to info.
func SetupLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "bjquiz",
		ReportTimestamp: true,
	})

	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
