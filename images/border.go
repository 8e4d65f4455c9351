package images

import (
	"image"
	"sync"
)

// GreyBand is an inclusive per-channel range. A pixel whose red, green and blue
// channels all fall inside the band is treated as border.
//
// The default band is a heuristic tuned to the light grey margin of one source
// asset. It does not detect arbitrary border colors.
type GreyBand struct {
	Min uint8 `yaml:"min" env:"ICON_BORDER_MIN"`
	Max uint8 `yaml:"max" env:"ICON_BORDER_MAX"`
}

// DefaultGreyBand is the light grey range stripped by default.
var DefaultGreyBand = GreyBand{Min: 225, Max: 245}

// Contains reports whether the given color falls inside the band on all three
// channels. Alpha is not considered.
func (b GreyBand) Contains(r, g, bl uint8) bool {
	return r >= b.Min && r <= b.Max &&
		g >= b.Min && g <= b.Max &&
		bl >= b.Min && bl <= b.Max
}

// ContentBounds finds the bounding box of every pixel that is not border.
//
// The scan is a single pass over the pixel buffer, split by rows across CPUs.
// Each partition keeps its own extremes and merges them once at the end.
//
// Arguments:
// - img: The image to scan.
// - band: The color range classified as border.
//
// Returns:
// - The bounding box of non-border pixels (X2, Y2 exclusive).
// - False if every pixel is border; the box is then empty.
//
// @example
// bounds, ok := ContentBounds(img, DefaultGreyBand)
func ContentBounds(img *image.NRGBA, band GreyBand) (Rect, bool) {
	width := img.Rect.Dx()
	height := img.Rect.Dy()

	found := Rect{X1: width, Y1: height, X2: 0, Y2: 0}
	var mu sync.Mutex

	Parallel(height, func(partStart, partEnd int) {
		local := Rect{X1: width, Y1: height, X2: 0, Y2: 0}

		for y := partStart; y < partEnd; y++ {
			off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
			row := img.Pix[off : off+width*4]
			for x, i := 0, 0; x < width; x, i = x+1, i+4 {
				if band.Contains(row[i], row[i+1], row[i+2]) {
					continue
				}
				if x < local.X1 {
					local.X1 = x
				}
				if x+1 > local.X2 {
					local.X2 = x + 1
				}
				if y < local.Y1 {
					local.Y1 = y
				}
				if y+1 > local.Y2 {
					local.Y2 = y + 1
				}
			}
		}

		if local.Empty() {
			return
		}

		mu.Lock()
		found.X1 = min(found.X1, local.X1)
		found.Y1 = min(found.Y1, local.Y1)
		found.X2 = max(found.X2, local.X2)
		found.Y2 = max(found.Y2, local.Y2)
		mu.Unlock()
	})

	if found.Empty() {
		return Rect{}, false
	}
	return found, true
}

// CropBorder removes a uniform border by cropping to the detected content plus
// padding on every side.
//
// Arguments:
// - img: The image to crop.
// - band: The color range classified as border.
// - pad: Pixels of margin kept around the content.
//
// Returns:
// - The cropped image, or img itself when no content was found.
// - The region kept, in img's coordinates.
// - False when no content was found and nothing was cropped.
func CropBorder(img *image.NRGBA, band GreyBand, pad int) (*image.NRGBA, Rect, bool) {
	content, ok := ContentBounds(img, band)
	if !ok {
		return img, Rect{}, false
	}

	region := content.Expand(pad).Clip(img.Rect.Dx(), img.Rect.Dy())
	return Crop(img, region), region, true
}
