package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"baseconv/convert"
	"baseconv/utils/common"
	"baseconv/utils/log"

	"github.com/docopt/docopt-go"
	"github.com/pkg/errors"
)

var usage = `decimal_to_binary converts a non-negative decimal integer to binary.
Usage:
	decimal_to_binary [options] [--] <number>

Options:
	-h --help                        Show help information in screen.
	--version                        Show version.
	-c --config-file=<config-file>   Specify the config file path.
	-w --width=<width>               Specify the zero-padded display width.
	-l --log-file=<log-file>         Specify the path to the log file.
	--log-level=<log-level>          Specify the log level. [options: debug, info, warning, error]
	--log-max-days=<log-max-days>    Specify the log max days.
`

var settings = append([]common.Setting{
	{Option: "--width", Section: "display", Key: "Width", Default: strconv.Itoa(convert.DisplayWidth)},
}, common.LogSettings...)

func run(parser *docopt.Parser, argv []string, stdout io.Writer) error {
	args, err := common.ParseArgs(parser, usage, argv)
	if err != nil {
		return errors.Wrap(err, "parsing arguments")
	}

	err = common.LoadConf(common.StringArg(args, "--config-file"), args, settings)
	if err != nil {
		return errors.Wrap(err, "loading configurations")
	}
	if err = common.InitLogging(args); err != nil {
		return errors.Wrap(err, "initializing log")
	}

	width, err := common.IntArg(args, "--width")
	if err != nil {
		return errors.Wrap(err, "checking width")
	}
	if width < 0 {
		return errors.Errorf("checking width: must not be negative, got %d", width)
	}

	number := common.StringArg(args, "<number>")
	digits, err := convert.DecimalTextToBinary(number)
	if err != nil {
		return errors.Wrap(err, "converting")
	}
	log.Debug("%s -> %s (%d digits)", number, digits, len(digits))

	_, err = fmt.Fprintln(stdout, convert.ZeroPad(digits, width))
	return errors.Wrap(err, "printing result")
}

func main() {
	if err := run(nil, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error during %v\n\n%s", err, usage)
		log.Flush()
		os.Exit(1)
	}
	log.Flush()
}
