package log

import (
	"fmt"
	"strings"

	"github.com/astaxie/beego/logs"
	"github.com/pkg/errors"
)

var logger = newLogger()

var levels = map[string]int{
	"debug":   logs.LevelDebug,
	"info":    logs.LevelInformational,
	"warning": logs.LevelWarning,
	"error":   logs.LevelError,
}

func newLogger() *logs.BeeLogger {
	l := logs.NewLogger()
	l.EnableFuncCallDepth(true)
	// skip the wrappers below
	l.SetLogFuncCallDepth(3)
	return l
}

// InitLog points the logger at stderr or at a daily rotated file.
// logWay is "console" or "file"; logMaxDays only applies to files.
func InitLog(logWay, logFile, logLevel string, logMaxDays int) error {
	level, ok := levels[strings.ToLower(logLevel)]
	if !ok {
		return errors.Errorf("unknown log level %q", logLevel)
	}

	logger.Reset()
	var err error
	switch logWay {
	case "console":
		err = logger.SetLogger(adapterStderr, fmt.Sprintf(`{"level":%d}`, level))
	case "file":
		err = logger.SetLogger(logs.AdapterFile, fmt.Sprintf(`{"filename":%q,"level":%d,"maxdays":%d,"daily":true}`, logFile, level, logMaxDays))
	default:
		err = errors.Errorf("unknown log way %q", logWay)
	}
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	return nil
}

func Debug(format string, v ...interface{}) {
	logger.Debug(format, v...)
}

func Info(format string, v ...interface{}) {
	logger.Info(format, v...)
}

func Warn(format string, v ...interface{}) {
	logger.Warn(format, v...)
}

func Flush() {
	logger.Flush()
}
