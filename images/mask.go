package images

import (
	"image"

	"github.com/chewxy/math32"
)

// RoundedRectMask builds a size x size alpha mask holding a filled rounded
// rectangle that touches all four edges.
//
// A pixel is opaque when its center lies within radius of the arc center of
// the corner it falls in; pixels outside the four corner squares are always
// opaque. The mask is binary: 255 inside, 0 outside.
//
// Arguments:
// - size: Side length of the mask in pixels.
// - radius: Corner radius in pixels, clamped to [0, size/2].
//
// Returns:
// - The mask as *image.Alpha.
//
// @example
// mask := RoundedRectMask(1024, 220)
func RoundedRectMask(size, radius int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	radius = Clamp(radius, 0, size/2)

	r := float32(radius)
	far := float32(size - radius)

	Parallel(size, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			cy := float32(y) + 0.5
			row := mask.Pix[y*mask.Stride : y*mask.Stride+size]

			for x := range row {
				cx := float32(x) + 0.5

				// Distance from the nearest arc center; zero outside the corner squares.
				var dx, dy float32
				switch {
				case cx < r:
					dx = r - cx
				case cx > far:
					dx = cx - far
				}
				switch {
				case cy < r:
					dy = r - cy
				case cy > far:
					dy = cy - far
				}

				if dx == 0 || dy == 0 || math32.Hypot(dx, dy) <= r {
					row[x] = 0xff
				}
			}
		}
	})

	return mask
}

// ApplyMask intersects an image's alpha channel with a mask in place:
// a' = a * m / 255. With a binary mask a pixel stays visible only where both
// the original alpha and the mask are opaque, and keeps its alpha unchanged
// inside the mask.
//
// Arguments:
// - img: The image to mask. Modified in place.
// - mask: A mask with the same dimensions as img.
//
// Returns:
// - None (modifies img in-place).
//
// @example
// ApplyMask(icon, RoundedRectMask(1024, 220))
func ApplyMask(img *image.NRGBA, mask *image.Alpha) {
	width := min(img.Rect.Dx(), mask.Rect.Dx())
	height := min(img.Rect.Dy(), mask.Rect.Dy())

	Parallel(height, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			pixOff := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
			maskOff := mask.PixOffset(mask.Rect.Min.X, mask.Rect.Min.Y+y)

			for x := 0; x < width; x++ {
				m := uint32(mask.Pix[maskOff+x])
				if m == 0xff {
					continue
				}
				a := &img.Pix[pixOff+x*4+3]
				*a = uint8(uint32(*a) * m / 0xff)
			}
		}
	})
}
