package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. Set DEBUG=1 to enable debug output.
var Log = New()

func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: true,
	})

	level := logrus.InfoLevel
	if os.Getenv("DEBUG") == "1" {
		level = logrus.DebugLevel
	}
	l.SetLevel(level)

	return l
}
