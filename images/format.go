package images

import "strings"

// ImageFormat represents supported image formats
type ImageFormat string

// ImageFormat constants
const (
	FormatJPEG ImageFormat = "jpeg"
	FormatWebP ImageFormat = "webp"
	FormatPNG  ImageFormat = "png"
	FormatGIF  ImageFormat = "gif"
	FormatBMP  ImageFormat = "bmp"
	FormatTIFF ImageFormat = "tiff"
)

// ParseFormat maps the format name reported by image.Decode to an ImageFormat.
// Unknown names are returned lower-cased as is.
func ParseFormat(name string) ImageFormat {
	switch n := strings.ToLower(name); n {
	case "jpg":
		return FormatJPEG
	case "tif":
		return FormatTIFF
	default:
		return ImageFormat(n)
	}
}
