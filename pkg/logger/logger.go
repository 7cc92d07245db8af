// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init and writes to stderr
// at info level until then.
var Log = logrus.New()

// Init configures the global logger from the environment. Call it once at
// startup from main.
//
// LOG_LEVEL selects the level (default "info"). LOG_FORMAT=json switches to
// JSON output, anything else gives coloured text.
func Init() {
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure applies a level, a format and an output to the global logger.
// Unknown levels fall back to info.
func Configure(levelName, format string, out io.Writer) {
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
}
