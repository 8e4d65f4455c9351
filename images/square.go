package images

import "image"

// CenterSquare center-crops an image to a square of side min(width, height).
// Square images are returned unchanged. The image is never stretched.
//
// Arguments:
// - img: The image to square.
//
// Returns:
// - The squared image.
// - True if a crop took place.
//
// @example
// square, cropped := CenterSquare(img) // 300x200 -> 200x200, offset (50, 0)
func CenterSquare(img *image.NRGBA) (*image.NRGBA, bool) {
	width := img.Rect.Dx()
	height := img.Rect.Dy()
	if width == height {
		return img, false
	}

	side := min(width, height)
	left := (width - side) / 2
	top := (height - side) / 2

	return Crop(img, Rect{X1: left, Y1: top, X2: left + side, Y2: top + side}), true
}
