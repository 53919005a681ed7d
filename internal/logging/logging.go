// Package logging is the leveled logger shared by the service and the batch tool.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})
}

// SetLevel parses a level name such as "debug" or "warn". Unknown names keep
// the current level and return false.
func SetLevel(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		Log.Warnf("Unknown log level %q, keeping %s", name, Log.GetLevel())
		return false
	}
	Log.SetLevel(level)
	return true
}

func Infof(format string, v ...any) {
	Log.Infof(format, v...)
}

func Warnf(format string, v ...any) {
	Log.Warnf(format, v...)
}

func Fatalf(format string, v ...any) {
	Log.Fatalf(format, v...)
}

// WithRequest tags entries with a request id when one is known.
func WithRequest(reqID string) *logrus.Entry {
	if reqID == "" {
		return logrus.NewEntry(Log)
	}
	return Log.WithFields(logrus.Fields{"request_id": reqID})
}
