// Package covers is the cover-art conditioning feature: its command-line arguments and the conditioner that finds
// albums without the cover file and writes resized copies of the cover.
package covers

import "github.com/hymnist/hymnist/internal/args"

const (
	DefaultFileName  = "cover.jpg" // canonical cover file name
	DefaultDimension = 600         // max height/width of the canonical cover
	DefaultDPI       = 72          // resized images density
)

// DefaultDimensionLimits returns the default max height/width of the resized copies.
func DefaultDimensionLimits() []int { return []int{1000, 600, 360} } //nolint:mnd

// Destination names of the module arguments.
const (
	destMissing          = "missing"
	destDimensionLimit   = "dimension_limit"
	destDefaultDimension = "default_dimension"
	destDPI              = "dpi"
)

// Module declares the cover-art conditioning arguments.
type Module struct{}

var _ interface {
	args.Module
	args.Grouper
} = Module{}

// ArgumentGroup returns the help section of the module.
func (Module) ArgumentGroup() args.Group {
	return args.Group{Name: "Cover-Art Conditioning", Description: "Process existing cover-art files."}
}

// Arguments returns the module arguments.
func (Module) Arguments() ([]args.Argument, error) {
	return []args.Argument{
		{
			Flags:  []string{"-m", "--missing"},
			Action: args.StoreTrue,
			Help:   "Find all albums that do not have a " + DefaultFileName + " file.",
		},
		{
			Flags:   []string{destDimensionLimit},
			Nargs:   args.ZeroOrMore,
			Type:    args.Int,
			Default: DefaultDimensionLimits(),
			Help:    "Max height/width to make resized copies at.",
		},
		{
			Flags:   []string{"-d", "--default-dimension"},
			Type:    args.Int,
			Default: DefaultDimension,
			Help:    "Max height/width to use for the default " + DefaultFileName + ".",
		},
		{
			Flags:   []string{"--dpi"},
			Type:    args.Int,
			Default: DefaultDPI,
			Help:    "DPI for resized images.",
		},
	}, nil
}
