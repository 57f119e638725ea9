package common

import (
	"os"
	"path/filepath"

	"baseconv/utils/log"
	"baseconv/utils/version"

	"github.com/docopt/docopt-go"
	"github.com/pkg/errors"
)

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

func Mkdir(path string, existOk bool) error {
	if existOk {
		return os.MkdirAll(path, os.ModePerm)
	}
	return os.Mkdir(path, os.ModePerm)
}

func LoadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return data, nil
}

// WriteFile writes data to path, creating the parent directory first.
func WriteFile(path string, data []byte) error {
	if err := Mkdir(filepath.Dir(path), true); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}
	return os.WriteFile(path, data, 0o644)
}

// ParseArgs parses argv against a docopt usage string. A nil parser
// prints usage and exits on bad input, like docopt.ParseArgs.
func ParseArgs(parser *docopt.Parser, usage string, argv []string) (map[string]interface{}, error) {
	if parser == nil {
		parser = &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}
	}
	opts, err := parser.ParseArgs(usage, argv, version.GetVersion())
	if err != nil {
		return nil, err
	}
	args := make(map[string]interface{}, len(opts))
	for k, v := range opts {
		args[k] = v
	}
	return args, nil
}

// InitLogging configures the logger from the --log-* options. A log file
// named "console" logs to the screen.
func InitLogging(args map[string]interface{}) error {
	logFile := StringArg(args, "--log-file")
	logWay := "file"
	if logFile == "console" {
		logWay = "console"
	}
	logMaxDays, err := IntArg(args, "--log-max-days")
	if err != nil {
		return err
	}
	return log.InitLog(logWay, logFile, StringArg(args, "--log-level"), logMaxDays)
}
