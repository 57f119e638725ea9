package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"baseconv/convert"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

func runArgs(t *testing.T, argv ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(quiet, argv, &out)
	return out.String(), err
}

func TestRun(t *testing.T) {
	cases := map[string]string{
		"0":     "0000000000000000\n",
		"5":     "0000000000000101\n",
		"255":   "0000000011111111\n",
		"65536": "10000000000000000\n",
	}
	for in, want := range cases {
		out, err := runArgs(t, in)
		require.NoError(t, err, "input %s", in)
		assert.Equal(t, want, out, "input %s", in)
	}
}

func TestRunWidth(t *testing.T) {
	out, err := runArgs(t, "--width", "4", "5")
	require.NoError(t, err)
	assert.Equal(t, "0101\n", out)

	_, err = runArgs(t, "--width=-1", "5")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "decimal_to_binary.ini")
	require.NoError(t, os.WriteFile(path, []byte("[display]\nWidth = 8\n"), 0o644))
	out, err = runArgs(t, "-c", path, "5")
	require.NoError(t, err)
	assert.Equal(t, "00000101\n", out)
}

func TestRunRejectsInvalidInput(t *testing.T) {
	_, err := runArgs(t, "twelve")
	assert.ErrorIs(t, err, convert.ErrNotInteger)

	_, err = runArgs(t, "1.5")
	assert.ErrorIs(t, err, convert.ErrNotInteger)

	_, err = runArgs(t, "--", "-5")
	assert.ErrorIs(t, err, convert.ErrNegative)

	_, err = runArgs(t)
	assert.Error(t, err)
}

func TestRunErrorNamesStep(t *testing.T) {
	_, err := runArgs(t, "twelve")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "converting: "), err.Error())

	_, err = runArgs(t, "--width=wide", "5")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "checking width: "), err.Error())

	_, err = runArgs(t, "--log-level=loud", "5")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "initializing log: "), err.Error())
}
