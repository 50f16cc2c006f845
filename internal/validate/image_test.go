package validate_test

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnist/hymnist/internal/validate"
)

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("fake error") }

func encoded(t *testing.T, enc func(io.Writer, image.Image) error) []byte {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, enc(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))

	return buf.Bytes()
}

func TestImageType(t *testing.T) {
	t.Parallel()

	var (
		jpegEnc = func(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, nil) }
		pngEnc  = png.Encode
	)

	for name, tc := range map[string]struct {
		giveReader func(*testing.T) io.Reader
		wantType   string
		wantErr    bool
	}{
		"empty reader": {
			giveReader: func(*testing.T) io.Reader { return bytes.NewReader(nil) },
		},
		"fake string": {
			giveReader: func(*testing.T) io.Reader { return bytes.NewReader([]byte("foo bar")) },
		},
		"broken reader": {
			giveReader: func(*testing.T) io.Reader { return brokenReader{} },
			wantErr:    true,
		},
		"zip archive": {
			giveReader: func(*testing.T) io.Reader { return bytes.NewReader([]byte("PK\x03\x04 rest of the archive")) },
		},
		"gif file": {
			giveReader: func(*testing.T) io.Reader { return bytes.NewReader([]byte("GIF89a.......")) },
			wantType:   "image/gif",
		},
		"jpg file": {
			giveReader: func(t *testing.T) io.Reader { return bytes.NewReader(encoded(t, jpegEnc)) },
			wantType:   "image/jpeg",
		},
		"png file": {
			giveReader: func(t *testing.T) io.Reader { return bytes.NewReader(encoded(t, pngEnc)) },
			wantType:   "image/png",
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ct, err := validate.ImageType(tc.giveReader(t))

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tc.wantType, ct)
		})
	}
}

func TestIsImage_Rewinds(t *testing.T) {
	t.Parallel()

	var r = bytes.NewReader([]byte("GIF89a.......tail"))

	ok, err := validate.IsImage(r)
	require.NoError(t, err)
	assert.True(t, ok)

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "GIF89a.......tail", string(rest))
}
