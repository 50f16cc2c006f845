package covers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnist/hymnist/internal/config"
	"github.com/hymnist/hymnist/internal/covers"
)

func toPtr[T any](v T) *T { return &v }

func TestOptionsFrom_Config(t *testing.T) {
	t.Parallel()

	var cfg = config.Covers{
		FileName:         toPtr("folder.jpg"),
		DimensionLimits:  toPtr([]int{500}),
		DefaultDimension: toPtr(450),
		DPI:              toPtr(300),
	}

	t.Run("config fills the defaults", func(t *testing.T) {
		t.Parallel()

		opts, err := covers.OptionsFrom(parse(t), cfg)
		require.NoError(t, err)

		assert.Equal(t, covers.Options{
			FileName:         "folder.jpg",
			DimensionLimits:  []int{500},
			DefaultDimension: 450,
			DPI:              300,
		}, opts)
	})

	t.Run("command line wins", func(t *testing.T) {
		t.Parallel()

		opts, err := covers.OptionsFrom(parse(t, "-m", "--dpi", "96", "800", "400"), cfg)
		require.NoError(t, err)

		assert.Equal(t, covers.Options{
			Missing:          true,
			FileName:         "folder.jpg",
			DimensionLimits:  []int{800, 400},
			DefaultDimension: 450,
			DPI:              96,
		}, opts)
	})
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	var valid = covers.Options{FileName: "cover.jpg", DimensionLimits: []int{600}, DefaultDimension: 600, DPI: 72}

	assert.NoError(t, valid.Validate())

	for name, tc := range map[string]struct {
		giveChange    func(*covers.Options)
		wantErrSubstr string
	}{
		"empty file name":    {func(o *covers.Options) { o.FileName = "" }, "invalid cover file name"},
		"file name with dir": {func(o *covers.Options) { o.FileName = "a/cover.jpg" }, "invalid cover file name"},
		"png file name":      {func(o *covers.Options) { o.FileName = "cover.png" }, "must have the .jpg or .jpeg extension"},
		"zero dimension":     {func(o *covers.Options) { o.DefaultDimension = 0 }, "default dimension must be positive"},
		"negative limit":     {func(o *covers.Options) { o.DimensionLimits = []int{100, -1} }, "dimension limits must be positive"},
		"zero dpi":           {func(o *covers.Options) { o.DPI = 0 }, "dpi must be in the range 1..65535"},
		"huge dpi":           {func(o *covers.Options) { o.DPI = 70000 }, "dpi must be in the range"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var o = valid

			tc.giveChange(&o)

			assert.ErrorContains(t, o.Validate(), tc.wantErrSubstr)
		})
	}
}

func TestOptionsFrom_Invalid(t *testing.T) {
	t.Parallel()

	_, err := covers.OptionsFrom(parse(t, "--dpi", "0"), config.Covers{})

	assert.ErrorContains(t, err, "dpi must be in the range")
}

func TestOptions_ResizedName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cover-600.jpg", covers.Options{FileName: "cover.jpg"}.ResizedName(600))
	assert.Equal(t, "Folder-360.JPEG", covers.Options{FileName: "Folder.JPEG"}.ResizedName(360))
}
