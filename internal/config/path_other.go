//go:build !linux && !darwin && !windows

package config

import (
	"os"
	"path/filepath"
)

// osSpecificConfigDirPath determines the path to the directory where the configuration file is looked for by default
// on the other operating systems.
func osSpecificConfigDirPath() string {
	if v, ok := os.LookupEnv("HOME"); ok {
		return filepath.Join(v, ".config")
	}

	return ""
}
