// Package validate checks file contents.
package validate

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// sniffLen is enough for the "first bytes" checking.
const sniffLen = 32

// ImageType returns the MIME type of the image content (e.g. "image/jpeg") or an empty string when the content is
// not an image. The source is rewound when it implements io.Seeker.
func ImageType(src io.Reader) (string, error) {
	var buf = make([]byte, sniffLen)

	n, err := io.ReadFull(src, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}

	if seeker, ok := src.(io.Seeker); ok {
		if _, err = seeker.Seek(0, io.SeekStart); err != nil {
			return "", err
		}
	}

	if ct := http.DetectContentType(buf[:n]); strings.HasPrefix(ct, "image/") {
		return ct, nil
	}

	return "", nil
}

// IsImage checks for passed content is image or not.
func IsImage(src io.Reader) (bool, error) {
	ct, err := ImageType(src)

	return ct != "", err
}
