package common

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/vaughan0/go-ini"
)

// Setting binds a command-line option to a key of the ini config file.
type Setting struct {
	Option  string // e.g. "--log-level"
	Section string
	Key     string
	Default string
}

// LogSettings are understood by every tool.
var LogSettings = []Setting{
	{Option: "--log-file", Section: "common", Key: "LogFile", Default: "console"},
	{Option: "--log-level", Section: "common", Key: "LogLevel", Default: "warning"},
	{Option: "--log-max-days", Section: "common", Key: "LogMaxDays", Default: "7"},
}

// LoadConf fills every option left unset on the command line, first from
// confFile and then from the setting's default. An empty confFile is skipped.
func LoadConf(confFile string, args map[string]interface{}, settings []Setting) error {
	var conf ini.File
	if confFile != "" {
		var err error
		conf, err = ini.LoadFile(confFile)
		if err != nil {
			return errors.Wrapf(err, "load config file %s", confFile)
		}
	}

	for _, s := range settings {
		if args[s.Option] != nil {
			continue
		}
		if conf != nil {
			if tmpStr, ok := conf.Get(s.Section, s.Key); ok {
				args[s.Option] = tmpStr
				continue
			}
		}
		args[s.Option] = s.Default
	}
	return nil
}

// StringArg returns a string option, or "" when it is unset.
func StringArg(args map[string]interface{}, option string) string {
	s, _ := args[option].(string)
	return s
}

func IntArg(args map[string]interface{}, option string) (int, error) {
	n, err := strconv.Atoi(StringArg(args, option))
	if err != nil {
		return 0, errors.Wrapf(err, "option %s", option)
	}
	return n, nil
}
