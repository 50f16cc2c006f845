package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	for give, want := range map[string]string{
		"v1.2.3":           "1.2.3",
		"V1.0.0-rc1":       "1.0.0-rc1",
		" 0.1.0":           "0.1.0",
		"v0.0.0@undefined": "0.0.0@undefined",
	} {
		t.Run(give, func(t *testing.T) {
			var orig = version

			defer func() { version = orig }()

			version = give

			assert.Equal(t, want, Version())
		})
	}
}
