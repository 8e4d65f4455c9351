// Package icon turns an arbitrary source image into a rounded, square app icon.
//
// The pipeline is a single forward pass:
//
//	decode -> NRGBA -> [border crop] -> center square -> resize -> corner mask -> PNG
//
// Border cropping is optional and degrades to a warning when the whole image
// classifies as border.
package icon

import (
	"image"
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-iconkit/images"
	"github.com/nvr-ai/go-iconkit/util"
)

// ErrEmptyImage is returned for sources with no pixels.
var ErrEmptyImage = errors.New("empty image")

// Normalizer applies Options to images. It holds no per-image state and is safe
// for concurrent use.
type Normalizer struct {
	opts   Options
	logger *log.Logger
}

// NewNormalizer validates opts and returns a Normalizer logging to logger.
// A nil logger discards output.
func NewNormalizer(opts Options, logger *log.Logger) (*Normalizer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Normalizer{opts: opts, logger: logger}, nil
}

// Options returns the options the normalizer was built with.
func (n *Normalizer) Options() Options {
	return n.opts
}

// Normalize runs the in-memory pipeline on a decoded image.
//
// Arguments:
//   - src: The decoded source image, any color model.
//
// Returns:
//   - *image.NRGBA: The TargetSize x TargetSize icon.
//   - Report: What each stage did.
//   - error: ErrEmptyImage when src has no pixels.
func (n *Normalizer) Normalize(src image.Image) (*image.NRGBA, Report, error) {
	bounds := src.Bounds()
	report := Report{
		OriginalWidth:  bounds.Dx(),
		OriginalHeight: bounds.Dy(),
		SourceModel:    images.ModelName(src.ColorModel()),
	}
	if bounds.Empty() {
		return nil, report, errors.Wrapf(ErrEmptyImage, "source is %dx%d", bounds.Dx(), bounds.Dy())
	}

	img, converted := images.ToNRGBA(src)
	report.Converted = converted
	if converted {
		n.logger.Printf("Converted %s to NRGBA", report.SourceModel)
	}

	if n.opts.CropBorder {
		n.logger.Printf("Detecting and removing grey borders...")
		pad := int(float64(img.Rect.Dx()) * n.opts.BorderPaddingRatio)
		before := img.Rect.Size()

		cropped, region, ok := images.CropBorder(img, n.opts.BorderBand, pad)
		if ok {
			img = cropped
			report.BorderCropped = true
			report.ContentBounds = region
			n.logger.Printf("Border removed - new size: %dx%d (was %dx%d)",
				img.Rect.Dx(), img.Rect.Dy(), before.X, before.Y)
		} else {
			report.warn("no content outside the border band %d-%d; skipping crop",
				n.opts.BorderBand.Min, n.opts.BorderBand.Max)
			n.logger.Printf("Warning: %s", report.Warnings[len(report.Warnings)-1])
		}
	}

	if squared, ok := images.CenterSquare(img); ok {
		img = squared
		report.SquareCropped = true
		n.logger.Printf("Cropped to square: %dx%d", img.Rect.Dx(), img.Rect.Dy())
	}

	if resized, ok := images.ResizeSquare(img, n.opts.TargetSize); ok {
		img = resized
		report.Resized = true
		n.logger.Printf("Resized to: %dx%d", img.Rect.Dx(), img.Rect.Dy())
	}

	// The mask is applied in place; never write through to the caller's buffer.
	if same, ok := src.(*image.NRGBA); ok && same == img {
		img = images.Crop(img, images.Rect{X2: img.Rect.Dx(), Y2: img.Rect.Dy()})
	}

	report.CornerRadius = n.opts.CornerRadius()
	n.logger.Printf("Applying corner radius: %dpx (%.1f%%)",
		report.CornerRadius, n.opts.CornerRadiusRatio*100)
	images.ApplyMask(img, images.RoundedRectMask(n.opts.TargetSize, report.CornerRadius))

	report.Size = img.Rect.Dx()
	report.Checksum = images.Checksum(img)
	return img, report, nil
}

// ProcessFile decodes input, normalizes it and writes the icon to output as PNG.
//
// Arguments:
//   - input: Path of the source image.
//   - output: Path of the PNG to write.
//
// Returns:
//   - Report: What each stage did.
//   - error: A decode or write error naming the offending file.
func (n *Normalizer) ProcessFile(input, output string) (Report, error) {
	n.logger.Printf("Loading: %s", input)
	file, err := util.LoadImageFile(input)
	if err != nil {
		return Report{}, err
	}
	n.logger.Printf("Original: %s", file.Info)

	img, report, err := n.Normalize(file.Image)
	report.Source = file.Info
	if err != nil {
		return report, errors.WithMessagef(err, "failed to normalize %s", input)
	}

	if err := util.SavePNG(output, img); err != nil {
		return report, err
	}
	n.logger.Printf("Saved: %s", output)
	n.logger.Printf("Final size: %dx%d, checksum %s", report.Size, report.Size, report.Checksum)

	return report, nil
}
