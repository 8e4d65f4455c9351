package images

import (
	"crypto/md5"
	"fmt"
	"image"
)

// Checksum generates a deterministic checksum of an image's pixels to verify
// idempotency.
//
// Arguments:
// - img: The image to compute checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string, or "empty" for a zero-sized image.
//
// Example:
//
// ```go
//
//	checksum := Checksum(icon)
//	fmt.Printf("Icon checksum: %s\n", checksum)
//
// ```
func Checksum(img *image.NRGBA) string {
	width := img.Rect.Dx()
	height := img.Rect.Dy()
	if width == 0 || height == 0 {
		return "empty"
	}

	hash := md5.New()
	fmt.Fprintf(hash, "%dx%d:", width, height)
	for y := 0; y < height; y++ {
		off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		hash.Write(img.Pix[off : off+width*4])
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}
