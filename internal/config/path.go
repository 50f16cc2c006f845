package config

import (
	"os"
	"path/filepath"
)

// FileName holds the name of the configuration file.
const FileName = "hymnist.yml"

// DefaultDirPathEnvName used to override the default directory path (useful for testing purposes).
const DefaultDirPathEnvName = "HYMNIST_CONFIG_DIR"

// DefaultDirPath returns the default directory path where the configuration file is looked for by default.
// Only in case of exception, this function returns an empty string.
func DefaultDirPath() string {
	if v, ok := os.LookupEnv(DefaultDirPathEnvName); ok {
		return v
	}

	if v := osSpecificConfigDirPath(); v != "" {
		return filepath.Join(v, "hymnist")
	}

	return "" // no default path
}

// DefaultFilePath returns the configuration file path inside the directory.
func DefaultFilePath(dir string) string { return filepath.Join(dir, FileName) }
