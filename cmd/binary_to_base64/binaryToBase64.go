package main

import (
	"fmt"
	"io"
	"os"

	"baseconv/convert"
	"baseconv/utils/common"
	"baseconv/utils/log"

	"github.com/docopt/docopt-go"
	"github.com/pkg/errors"
)

var usage = `binary_to_base64 converts a binary string to its Base64 representation.
Usage:
	binary_to_base64 [options] <binary_string>
	binary_to_base64 [options] --random=<digits>

Options:
	-h --help                        Show help information in screen.
	--version                        Show version.
	-c --config-file=<config-file>   Specify the config file path.
	-d --decode                      Decode Base64 text back to a binary string.
	-r --random=<digits>             Encode a random binary string of the given length.
	-l --log-file=<log-file>         Specify the path to the log file.
	--log-level=<log-level>          Specify the log level. [options: debug, info, warning, error]
	--log-max-days=<log-max-days>    Specify the log max days.
`

func run(parser *docopt.Parser, argv []string, stdout io.Writer) error {
	args, err := common.ParseArgs(parser, usage, argv)
	if err != nil {
		return errors.Wrap(err, "parsing arguments")
	}

	err = common.LoadConf(common.StringArg(args, "--config-file"), args, common.LogSettings)
	if err != nil {
		return errors.Wrap(err, "loading configurations")
	}
	if err = common.InitLogging(args); err != nil {
		return errors.Wrap(err, "initializing log")
	}

	decode, _ := args["--decode"].(bool)
	if args["--random"] != nil {
		if decode {
			return errors.New("parsing arguments: --decode cannot be combined with --random")
		}
		digits, err := common.IntArg(args, "--random")
		if err != nil {
			return errors.Wrap(err, "generating input")
		}
		if digits < 0 {
			return errors.Errorf("generating input: length must not be negative, got %d", digits)
		}
		input := convert.RandomBinary(digits)
		encoded, err := convert.BinaryToBase64(input)
		if err != nil {
			return errors.Wrap(err, "encoding")
		}
		_, err = fmt.Fprintf(stdout, "%s\n%s\n", input, encoded)
		return errors.Wrap(err, "printing result")
	}

	input := common.StringArg(args, "<binary_string>")
	var output string
	if decode {
		output, err = convert.Base64ToBinary(input)
		if err != nil {
			return errors.Wrap(err, "decoding")
		}
	} else {
		output, err = convert.BinaryToBase64(input)
		if err != nil {
			return errors.Wrap(err, "encoding")
		}
	}
	log.Debug("%q -> %q", input, output)

	_, err = fmt.Fprintln(stdout, output)
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
