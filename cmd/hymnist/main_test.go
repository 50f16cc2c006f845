package main

import (
	"os"
	"testing"

	"github.com/kami-zh/go-capturer"
	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()

	var orig = os.Args

	t.Cleanup(func() { os.Args = orig })

	os.Args = args
}

func Test_RunHelp(t *testing.T) {
	withArgs(t, "/usr/bin/hymnist", "--help")

	var code int

	output := capturer.CaptureStdout(func() { code = run() })

	assert.Equal(t, 0, code)
	assert.Contains(t, output, "usage: hymnist [-h]")
	assert.Contains(t, output, "Cover-Art Conditioning:")
}

func Test_RunWithoutPaths(t *testing.T) {
	withArgs(t, "hymnist")

	var code int

	output := capturer.CaptureStderr(func() { code = run() })

	assert.Equal(t, 2, code)
	assert.Contains(t, output, "hymnist: error: the following arguments are required: paths")
}
