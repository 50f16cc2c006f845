// Package config reads the optional YAML configuration file.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Config is used to unmarshal the configuration file content.
	Config struct {
		Covers Covers `yaml:"covers"`
	}

	// Covers holds the cover-art conditioning settings.
	Covers struct {
		// pointers are used to distinguish between unset and set values (nil = unset)
		FileName         *string `yaml:"fileName"`
		DimensionLimits  *[]int  `yaml:"dimensionLimits"`
		DefaultDimension *int    `yaml:"defaultDimension"`
		DPI              *int    `yaml:"dpi"`
	}
)

// FromFile initializes self state by reading the configuration file from the provided path.
// To merge values from one file with another, call this method multiple times with different paths (values
// from the last file will overwrite the previous ones).
func (c *Config) FromFile(path string) error {
	if c == nil {
		return errors.New("config is nil")
	}

	var f, err = os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open the config file")
	}

	defer func() { _ = f.Close() }()

	var dec = yaml.NewDecoder(f)

	dec.KnownFields(true)

	if err = dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) { // empty file
			return nil
		}

		return errors.Wrap(err, "failed to decode the config file")
	}

	return nil
}

// Lookup returns the path of the configuration file to read: the explicit path, when given, or the default
// file location when such a file exists. An empty string means there is nothing to read.
func Lookup(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if dir := DefaultDirPath(); dir != "" {
		var path = DefaultFilePath(dir)

		if stat, err := os.Stat(path); err == nil && stat.Mode().IsRegular() {
			return path
		}
	}

	return ""
}
