package utils

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

// Log is the shared logger of the SDK. Adapters derive their entries from it
// via WithField("adapter", name).
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	Log.SetLevel(logrus.InfoLevel)
}

// InitLog configures the shared logger. An empty logFile keeps stderr only,
// otherwise output goes to a size-rotated file as well.
func InitLog(debug bool, logFile string) {
	if debug {
		Log.SetLevel(logrus.DebugLevel)
		Log.SetReportCaller(true)
	}
	if logFile != "" {
		w := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10,
			MaxBackups: 3,
			Compress:   true,
		}
		Log.SetOutput(io.MultiWriter(os.Stderr, w))
	}
}
