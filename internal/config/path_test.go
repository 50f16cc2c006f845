package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hymnist/hymnist/internal/config"
)

func TestDefaultDirPath(t *testing.T) {
	t.Setenv(config.DefaultDirPathEnvName, "/foo/bar")

	assert.Equal(t, "/foo/bar", config.DefaultDirPath())
	assert.Equal(t, filepath.Join("/foo/bar", "hymnist.yml"), config.DefaultFilePath(config.DefaultDirPath()))
}
