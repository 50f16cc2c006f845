package covers

import (
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/hymnist/hymnist/internal/args"
	"github.com/hymnist/hymnist/internal/config"
)

// Options are the typed settings of the Conditioner.
type Options struct {
	Missing          bool   // only report albums without the cover file
	FileName         string // canonical cover file name
	DimensionLimits  []int  // max height/width of the resized copies
	DefaultDimension int    // max height/width of the canonical cover
	DPI              int    // density written into the images
}

// OptionsFrom builds the options from the parsed command line. Configuration file values are used for the
// arguments that were not given explicitly.
func OptionsFrom(ns *args.Namespace, cfg config.Covers) (Options, error) {
	var o = Options{
		Missing:          ns.Bool(destMissing),
		FileName:         DefaultFileName,
		DimensionLimits:  ns.Ints(destDimensionLimit),
		DefaultDimension: ns.Int(destDefaultDimension),
		DPI:              ns.Int(destDPI),
	}

	if cfg.FileName != nil {
		o.FileName = *cfg.FileName
	}

	if cfg.DimensionLimits != nil && !ns.IsSet(destDimensionLimit) {
		o.DimensionLimits = slices.Clone(*cfg.DimensionLimits)
	}

	if cfg.DefaultDimension != nil && !ns.IsSet(destDefaultDimension) {
		o.DefaultDimension = *cfg.DefaultDimension
	}

	if cfg.DPI != nil && !ns.IsSet(destDPI) {
		o.DPI = *cfg.DPI
	}

	if err := o.Validate(); err != nil {
		return Options{}, err
	}

	return o, nil
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.FileName == "" || filepath.Base(o.FileName) != o.FileName {
		return errors.Errorf("invalid cover file name: %q", o.FileName)
	}

	if ext := strings.ToLower(filepath.Ext(o.FileName)); ext != ".jpg" && ext != ".jpeg" {
		return errors.Errorf("cover file name %q must have the .jpg or .jpeg extension", o.FileName)
	}

	if o.DefaultDimension <= 0 {
		return errors.Errorf("default dimension must be positive, got %d", o.DefaultDimension)
	}

	for _, l := range o.DimensionLimits {
		if l <= 0 {
			return errors.Errorf("dimension limits must be positive, got %d", l)
		}
	}

	if o.DPI <= 0 || o.DPI > math.MaxUint16 {
		return errors.Errorf("dpi must be in the range 1..%d, got %d", math.MaxUint16, o.DPI)
	}

	return nil
}

// ResizedName returns the file name of the copy resized to the limit, e.g. "cover-600.jpg".
func (o Options) ResizedName(limit int) string {
	var ext = filepath.Ext(o.FileName)

	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(o.FileName, ext), limit, ext)
}
