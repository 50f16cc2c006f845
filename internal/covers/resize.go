package covers

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

const jpegQuality = 90

// fit returns the size of the image bounded by the limit, keeping the aspect ratio. Images that already fit are
// not enlarged.
func fit(width, height, limit int) (int, int) {
	var longest = max(width, height)

	if longest <= limit || longest == 0 {
		return width, height
	}

	var scale = func(side int) int { return max((side*limit+longest/2)/longest, 1) }

	return scale(width), scale(height)
}

// longestSide returns the max of the image width and height.
func longestSide(img image.Image) int { return max(img.Bounds().Dx(), img.Bounds().Dy()) }

// encodeBounded scales the image down to the limit and encodes it into JPEG with the density.
func encodeBounded(src image.Image, limit int, dpi uint16) ([]byte, image.Point, error) {
	var (
		b    = src.Bounds()
		w, h = fit(b.Dx(), b.Dy(), limit)
		dst  image.Image
	)

	if w == b.Dx() && h == b.Dy() {
		dst = src
	} else {
		var rgba = image.NewRGBA(image.Rect(0, 0, w, h))

		draw.CatmullRom.Scale(rgba, rgba.Bounds(), src, b, draw.Src, nil)

		dst = rgba
	}

	var buf bytes.Buffer

	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, image.Point{}, errors.Wrap(err, "failed to encode the image")
	}

	data, err := withDensity(buf.Bytes(), dpi)
	if err != nil {
		return nil, image.Point{}, err
	}

	return data, image.Pt(w, h), nil
}
