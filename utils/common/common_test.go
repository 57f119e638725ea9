package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUsage = `tool is a test tool.
Usage:
	tool [options] <input>

Options:
	-h --help                  Show help information in screen.
	--version                  Show version.
	-w --width=<width>         Specify the width.
	--log-file=<log-file>      Specify the path to the log file.
	--log-level=<log-level>    Specify the log level.
	--log-max-days=<days>      Specify the log max days.
`

var quiet = &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

func TestParseArgs(t *testing.T) {
	args, err := ParseArgs(quiet, testUsage, []string{"-w", "8", "101"})
	require.NoError(t, err)
	assert.Equal(t, "101", StringArg(args, "<input>"))
	assert.Equal(t, "8", StringArg(args, "--width"))
	assert.Nil(t, args["--log-level"])

	_, err = ParseArgs(quiet, testUsage, []string{})
	assert.Error(t, err)
}

func TestWriteAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.txt")
	assert.False(t, FileExists(path))

	require.NoError(t, WriteFile(path, []byte("QUI=")))
	assert.True(t, FileExists(path))

	data, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "QUI=", string(data))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMkdir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a")
	require.NoError(t, Mkdir(dir, false))
	assert.Error(t, Mkdir(dir, false))
	assert.NoError(t, Mkdir(dir, true))
}

func TestInitLogging(t *testing.T) {
	args := map[string]interface{}{}
	require.NoError(t, LoadConf("", args, LogSettings))
	assert.NoError(t, InitLogging(args))

	args["--log-max-days"] = "many"
	assert.Error(t, InitLogging(args))
}
