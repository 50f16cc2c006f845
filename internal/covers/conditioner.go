package covers

import (
	"context"
	"image"
	_ "image/png" // register the decoder
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp" // register the decoder

	"github.com/hymnist/hymnist/internal/finder"
	"github.com/hymnist/hymnist/internal/validate"
)

var (
	// TrackExtensions are the audio file extensions that make a directory an album.
	TrackExtensions = []string{"mp3", "flac", "m4a", "ogg", "opus", "wav", "aac", "wma", "alac", "ape"} //nolint:gochecknoglobals,lll

	// sourceNames are the base names of the images the cover can be made from, most preferred first.
	sourceNames = []string{"cover", "folder", "front", "album"} //nolint:gochecknoglobals

	sourceExtensions = []string{"jpg", "jpeg", "png", "webp"} //nolint:gochecknoglobals
)

// Conditioner finds the albums and conditions their cover-art files.
type Conditioner struct {
	log  *zap.Logger
	opts Options

	isTrack, isSource finder.FileFilterFn
}

// NewConditioner creates a new Conditioner. The options must be valid.
func NewConditioner(log *zap.Logger, opts Options) *Conditioner {
	var (
		bySourceName = finder.FilterByBaseName(sourceNames...)
		bySourceExt  = finder.FilterByExt(false, sourceExtensions...)
	)

	return &Conditioner{
		log:     log,
		opts:    opts,
		isTrack: finder.FilterByExt(false, TrackExtensions...),
		isSource: func(info os.FileInfo) bool {
			return bySourceName(info) && bySourceExt(info)
		},
	}
}

// Run processes every album found in the paths (directories are searched recursively). With the Missing option the
// albums without the cover file are only reported. Album failures are logged and reported; Run stops only when the
// context is canceled.
func (c *Conditioner) Run(ctx context.Context, paths []string) (*Report, error) {
	var report = new(Report)

	for album := range finder.Albums(ctx, c.roots(paths), c.isTrack) {
		report.Albums++

		var coverPath = filepath.Join(album, c.opts.FileName)

		if c.opts.Missing {
			if !fileExists(coverPath) {
				report.add(Row{Album: album, File: c.opts.FileName, Action: ActionMissing})
			}

			continue
		}

		rows, err := c.condition(ctx, album)
		if err != nil {
			c.log.Error("Album processing failed", zap.String("album", album), zap.Error(err))

			report.add(Row{Album: album, Action: ActionFailed, Error: err.Error()})

			continue
		}

		report.add(rows...)
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	return report, nil
}

// roots returns the paths that are directories. The others are logged and skipped.
func (c *Conditioner) roots(paths []string) []string {
	var dirs = make([]string, 0, len(paths))

	for _, path := range paths {
		stat, err := os.Stat(path)

		switch {
		case err != nil:
			c.log.Warn("Path skipped", zap.String("path", path), zap.Error(err))
		case !stat.IsDir():
			c.log.Warn("Path skipped, not a directory", zap.String("path", path))
		default:
			dirs = append(dirs, path)
		}
	}

	return dirs
}

// condition creates the missing cover file and the resized copies of the album cover.
func (c *Conditioner) condition(ctx context.Context, album string) ([]Row, error) { //nolint:funlen
	var (
		coverPath = filepath.Join(album, c.opts.FileName)
		dpi       = uint16(c.opts.DPI) //nolint:gosec // validated
		rows      []Row
		src       image.Image
	)

	if fileExists(coverPath) {
		img, err := decodeImage(coverPath)
		if err != nil {
			return nil, err
		}

		src = img
	} else {
		sourcePath, img := c.findSource(ctx, album)
		if img == nil {
			c.log.Debug("No source image found", zap.String("album", album))

			return []Row{{Album: album, File: c.opts.FileName, Action: ActionNoSource}}, nil
		}

		c.log.Debug("Creating the cover file", zap.String("source", sourcePath))

		row, err := c.write(album, c.opts.FileName, img, c.opts.DefaultDimension, dpi)
		if err != nil {
			return nil, err
		}

		row.Action = ActionCreated
		rows, src = append(rows, row), img
	}

	var seen = make(map[int]struct{}, len(c.opts.DimensionLimits))

	for _, limit := range c.opts.DimensionLimits {
		if _, dup := seen[limit]; dup {
			continue
		}

		seen[limit] = struct{}{}

		if limit >= longestSide(src) {
			c.log.Debug("Source image is not larger than the limit",
				zap.String("album", album),
				zap.Int("limit", limit),
				zap.Int("longest side", longestSide(src)),
			)

			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := c.write(album, c.opts.ResizedName(limit), src, limit, dpi)
		if err != nil {
			return nil, err
		}

		row.Action = ActionResized
		rows = append(rows, row)
	}

	return rows, nil
}

// findSource returns the most preferred image in the album directory the cover can be made from. A nil image
// means there is nothing suitable.
func (c *Conditioner) findSource(ctx context.Context, album string) (string, image.Image) {
	var candidates = slices.Collect(finder.Files(ctx, album, c.isSource))

	for _, name := range sourceNames {
		for _, path := range candidates {
			var base = filepath.Base(path)

			if !strings.EqualFold(strings.TrimSuffix(base, filepath.Ext(base)), name) {
				continue
			}

			img, err := decodeImage(path)
			if err != nil {
				c.log.Warn("Skipping the broken source image", zap.String("path", path), zap.Error(err))

				continue
			}

			return path, img
		}
	}

	return "", nil
}

// write saves the image bounded by the limit into the album directory.
func (c *Conditioner) write(album, name string, img image.Image, limit int, dpi uint16) (Row, error) {
	data, size, err := encodeBounded(img, limit, dpi)
	if err != nil {
		return Row{}, err
	}

	var path = filepath.Join(album, name)

	if err = os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec,mnd
		return Row{}, errors.Wrapf(err, "failed to write %s", path)
	}

	c.log.Info("Image written",
		zap.String("path", path),
		zap.Int("width", size.X),
		zap.Int("height", size.Y),
		zap.Int("size", len(data)),
	)

	return Row{Album: album, File: name, Width: size.X, Height: size.Y, Size: uint64(len(data))}, nil
}

// decodeImage reads the image file, checking its content first.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open the image")
	}

	defer func() { _ = f.Close() }()

	if ok, sniffErr := validate.IsImage(f); sniffErr != nil {
		return nil, errors.Wrapf(sniffErr, "failed to read %s", path)
	} else if !ok {
		return nil, errors.Errorf("%s is not an image", path)
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}

	return img, nil
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)

	return err == nil && stat.Mode().IsRegular()
}
