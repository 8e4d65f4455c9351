package icon

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nvr-ai/go-iconkit/images"
)

// ErrInvalidOptions is returned when normalizer options fail validation.
var ErrInvalidOptions = errors.New("invalid icon options")

// Options configures the icon normalizer.
type Options struct {
	// TargetSize is the side length of the output icon in pixels.
	TargetSize int `yaml:"targetSize" env:"ICON_TARGET_SIZE"`
	// CornerRadiusRatio is the corner radius as a fraction of TargetSize.
	CornerRadiusRatio float64 `yaml:"cornerRadiusRatio" env:"ICON_CORNER_RADIUS_RATIO"`
	// CropBorder enables grey border detection and removal.
	CropBorder bool `yaml:"cropBorder" env:"ICON_CROP_BORDER"`
	// BorderPaddingRatio is the margin kept around detected content, as a
	// fraction of the image width, applied on every side.
	BorderPaddingRatio float64 `yaml:"borderPaddingRatio" env:"ICON_BORDER_PADDING_RATIO"`
	// BorderBand is the color range classified as border.
	BorderBand images.GreyBand `yaml:"borderBand"`
}

// DefaultOptions returns the macOS app icon settings: 1024px, 21.5% corner
// radius, grey border removal with 1% padding.
func DefaultOptions() Options {
	return Options{
		TargetSize:         images.DefaultIconSize,
		CornerRadiusRatio:  images.DefaultCornerRadiusRatio,
		CropBorder:         true,
		BorderPaddingRatio: 0.01,
		BorderBand:         images.DefaultGreyBand,
	}
}

// LoadOptions layers configuration sources over the defaults: an optional YAML
// file, then ICON_* environment variables. Fields absent from a source keep
// their previous value.
//
// Arguments:
//   - path: Path to a YAML options file, or "" to skip it.
//
// Returns:
//   - Options: The merged options, validated.
//   - error: Error if the file cannot be read or parsed, or the result is invalid.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Options{}, errors.Wrap(err, "failed to read options file")
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return Options{}, errors.Wrapf(err, "failed to parse options file %s", path)
		}
	}

	if err := env.Parse(&opts); err != nil {
		return Options{}, errors.Wrap(err, "failed to parse environment")
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks that the options describe a producible icon.
func (o Options) Validate() error {
	if o.TargetSize <= 0 {
		return errors.Wrapf(ErrInvalidOptions, "target size must be positive, got %d", o.TargetSize)
	}
	if o.CornerRadiusRatio < 0 || o.CornerRadiusRatio > 0.5 {
		return errors.Wrapf(ErrInvalidOptions, "corner radius ratio must be in [0, 0.5], got %g", o.CornerRadiusRatio)
	}
	if o.BorderPaddingRatio < 0 || o.BorderPaddingRatio >= 0.5 {
		return errors.Wrapf(ErrInvalidOptions, "border padding ratio must be in [0, 0.5), got %g", o.BorderPaddingRatio)
	}
	if o.BorderBand.Min > o.BorderBand.Max {
		return errors.Wrapf(ErrInvalidOptions, "border band min %d exceeds max %d", o.BorderBand.Min, o.BorderBand.Max)
	}
	return nil
}

// CornerRadius returns the corner radius in whole pixels.
func (o Options) CornerRadius() int {
	return int(float64(o.TargetSize) * o.CornerRadiusRatio)
}

// ApplyIconSpec sets the target size and corner rounding from an iconset
// rendition.
func (o *Options) ApplyIconSpec(spec images.IconSpec) {
	o.TargetSize = spec.Size
	o.CornerRadiusRatio = spec.CornerRadiusRatio
}
