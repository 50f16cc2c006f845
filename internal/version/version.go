// Package version holds the application version, set during compilation.
package version

import "strings"

// version value will be set during compilation (-ldflags "-X <module>/internal/version.version=v1.2.3").
var version = "v0.0.0@undefined"

// Version returns version value (without `v` prefix).
func Version() string {
	return strings.TrimLeft(version, "vV ")
}
