package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"baseconv/stub"
	"baseconv/utils/common"
	"baseconv/utils/log"
	"baseconv/utils/serialize"

	"github.com/docopt/docopt-go"
	"github.com/pkg/errors"
)

var usage = `exercise_stub builds and fills the student stubs of an exercise.
Usage:
	exercise_stub list [options] <stub-file>
	exercise_stub fill [options] <stub-file> <solution-file>
	exercise_stub make [options] <solution-file> <name>...

Options:
	-h --help                        Show help information in screen.
	--version                        Show version.
	-c --config-file=<config-file>   Specify the config file path.
	-o --output=<output>             Write the result to a file instead of the screen.
	-f --force                       Overwrite the output file if it exists.
	--json                           Print the placeholder list as JSON.
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

	switch {
	case isSet(args, "list"):
		err = errors.Wrap(list(args, stdout), "listing placeholders")
	case isSet(args, "fill"):
		err = errors.Wrap(fill(args, stdout), "filling stub")
	case isSet(args, "make"):
		err = errors.Wrap(makeStub(args, stdout), "making stub")
	default:
		err = errors.New("parsing arguments: no command given")
	}
	return err
}

func isSet(args map[string]interface{}, command string) bool {
	b, _ := args[command].(bool)
	return b
}

func list(args map[string]interface{}, stdout io.Writer) error {
	stubFile := common.StringArg(args, "<stub-file>")
	src, err := common.LoadFile(stubFile)
	if err != nil {
		return err
	}
	names := stub.Placeholders(string(src))
	log.Info("%s has %d placeholders", stubFile, len(names))

	var out string
	if isSet(args, "--json") {
		if names == nil {
			names = []string{}
		}
		dict := map[string]interface{}{
			"File":         stubFile,
			"Placeholders": names,
		}
		data, err := serialize.Serialize(&dict)
		if err != nil {
			return err
		}
		out = string(data)
	} else if len(names) > 0 {
		out = strings.Join(names, "\n") + "\n"
	}
	return emit(args, stdout, out)
}

func fill(args map[string]interface{}, stdout io.Writer) error {
	src, err := common.LoadFile(common.StringArg(args, "<stub-file>"))
	if err != nil {
		return err
	}
	solution, err := common.LoadFile(common.StringArg(args, "<solution-file>"))
	if err != nil {
		return err
	}
	out, err := stub.FillFromSolution(string(src), string(solution))
	if err != nil {
		return err
	}
	return emit(args, stdout, out)
}

func makeStub(args map[string]interface{}, stdout io.Writer) error {
	solution, err := common.LoadFile(common.StringArg(args, "<solution-file>"))
	if err != nil {
		return err
	}
	names, _ := args["<name>"].([]string)
	out, err := stub.MakeStub(string(solution), names...)
	if err != nil {
		return err
	}
	return emit(args, stdout, out)
}

// emit writes text to --output when given, to stdout otherwise. An existing
// output file is only replaced with --force.
func emit(args map[string]interface{}, stdout io.Writer, text string) error {
	output := common.StringArg(args, "--output")
	if output == "" {
		_, err := io.WriteString(stdout, text)
		return err
	}
	if common.FileExists(output) {
		if !isSet(args, "--force") {
			return errors.Errorf("%s already exists, use --force to overwrite it", output)
		}
		log.Warn("Overwriting %s", output)
	}
	if err := common.WriteFile(output, []byte(text)); err != nil {
		return errors.Wrapf(err, "write %s", output)
	}
	log.Info("Wrote %d bytes to %s", len(text), output)
	return nil
}

func main() {
	if err := run(nil, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error during %v\n\n%s", err, usage)
		log.Flush()
		os.Exit(1)
	}
	log.Flush()
}
