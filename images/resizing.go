package images

import (
	"image"

	"github.com/nfnt/resize"
)

// ResizeSquare resamples an image to size x size with a Lanczos-3 filter.
// Images already at the target size are returned unchanged.
//
// Arguments:
//   - img: The image to resize. Callers square it first; a non-square input is
//     stretched.
//   - size: The target side length in pixels. Must be positive.
//
// Returns:
//   - *image.NRGBA: The resized image.
//   - bool: True if resampling took place.
func ResizeSquare(img *image.NRGBA, size int) (*image.NRGBA, bool) {
	if img.Rect.Dx() == size && img.Rect.Dy() == size {
		return img, false
	}

	resized := resize.Resize(uint(size), uint(size), img, resize.Lanczos3)
	if rgba, ok := resized.(*image.RGBA); ok {
		return unpremultiply(rgba), true
	}
	out, _ := ToNRGBA(resized)
	return out, true
}

// unpremultiply converts a premultiplied buffer to NRGBA, clamping each color
// channel to 255. Lanczos overshoot can leave a premultiplied channel above its
// alpha, which a plain color model conversion would wrap around.
func unpremultiply(src *image.RGBA) *image.NRGBA {
	bounds := src.Rect
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	width := bounds.Dx()

	Parallel(bounds.Dy(), func(start, end int) {
		for y := start; y < end; y++ {
			s := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			d := dst.Pix[dst.PixOffset(0, y):]
			for i := 0; i < width*4; i += 4 {
				a := uint32(s[i+3])
				d[i+3] = uint8(a)
				if a == 0 {
					d[i+0], d[i+1], d[i+2] = 0, 0, 0
					continue
				}
				for c := 0; c < 3; c++ {
					v := (uint32(s[i+c])*255 + a/2) / a
					d[i+c] = uint8(min(v, 255))
				}
			}
		}
	})

	return dst
}
