package util

import (
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"os"
	"path/filepath"

	_ "github.com/chai2010/webp" // register WebP decoder
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder

	"github.com/nvr-ai/go-iconkit/images"
)

// ImageFile represents a decoded image file.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Info describes the decoded image as it was stored.
	Info images.Image
	// Image is the decoded image.
	Image image.Image
}

// LoadImageFile opens and decodes an image file.
//
// Arguments:
// - path: Path to a PNG, JPEG, GIF, WebP, BMP or TIFF file.
//
// Returns:
// - ImageFile: The decoded image and its description.
// - error: Error if the file cannot be opened or decoded.
func LoadImageFile(path string) (ImageFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImageFile{}, errors.Wrap(err, "failed to open input image")
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return ImageFile{}, errors.Wrapf(err, "failed to decode image %s", path)
	}

	return ImageFile{
		Path:  path,
		Info:  images.Describe(img, images.ParseFormat(format)),
		Image: img,
	}, nil
}

// SavePNG encodes an image as PNG, creating the parent directory if needed.
//
// Arguments:
// - path: Destination file path.
// - img: The image to write.
//
// Returns:
// - error: Error if the file cannot be created, encoded or flushed.
func SavePNG(path string, img image.Image) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create output directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output image")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "failed to write image %s", path)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "failed to write image %s", path)
	}
	return nil
}
