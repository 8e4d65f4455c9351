package images

import (
	"image"
	"runtime"
	"sync"

	"golang.org/x/image/draw"
)

// ToNRGBA converts any decoded image into an origin-anchored, non-premultiplied
// RGBA buffer. Images that already are origin-anchored NRGBA are returned as is.
//
// Arguments:
// - img: The decoded source image (paletted, gray, YCbCr, CMYK, 16-bit...).
//
// Returns:
// - The image as *image.NRGBA with bounds starting at (0, 0).
// - True if a conversion took place.
//
// @example
// rgba, converted := ToNRGBA(decoded)
func ToNRGBA(img image.Image) (*image.NRGBA, bool) {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n, false
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)

	_, wasNRGBA := img.(*image.NRGBA)
	return dst, !wasNRGBA
}

// Crop copies the region r of img into a new origin-anchored buffer.
// The region is clipped to the image bounds first.
//
// Arguments:
// - img: The source image.
// - r: The region to keep, in the coordinate space of img.
//
// Returns:
// - A new image holding only the pixels inside r.
//
// @example
// content := Crop(img, Rect{X1: 10, Y1: 10, X2: 90, Y2: 90})
func Crop(img *image.NRGBA, r Rect) *image.NRGBA {
	region := r.Rectangle().Add(img.Rect.Min).Intersect(img.Rect)
	dst := image.NewNRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))

	// Row copies keep this a straight memmove per scanline.
	rowBytes := region.Dx() * 4
	for y := 0; y < region.Dy(); y++ {
		srcOff := img.PixOffset(region.Min.X, region.Min.Y+y)
		dstOff := dst.PixOffset(0, y)
		copy(dst.Pix[dstOff:dstOff+rowBytes], img.Pix[srcOff:srcOff+rowBytes])
	}

	return dst
}

// Clamp restricts a value to the specified range [min, max].
// This is used to prevent overflow in color calculations.
//
// Arguments:
// - value: The value to Clamp.
// - min: Minimum allowed value.
// - max: Maximum allowed value.
//
// Returns:
// - The clamped value within [min, max].
//
// @example
// clamped := Clamp(300, 0, 255) // Returns 255
// clamped := Clamp(-10, 0, 255) // Returns 0
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Parallel executes a function in Parallel across multiple goroutines.
// This improves performance on multi-core systems.
//
// Arguments:
// - dataSize: The size of the data to process.
// - fn: Function to execute for each partition (receives start and end indices).
//
// Returns:
// - None.
//
// @example
//
//	Parallel(height, func(start, end int) {
//	    for y := start; y < end; y++ {
//	        // Process row y
//	    }
//	})
func Parallel(dataSize int, fn func(partStart, partEnd int)) {
	numGoroutines := runtime.NumCPU()

	// For small data sizes, parallel processing overhead isn't worth it.
	if dataSize < numGoroutines*2 {
		fn(0, dataSize)
		return
	}

	partSize := dataSize / numGoroutines

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		partStart := i * partSize
		partEnd := partStart + partSize

		// Last partition gets any remaining data.
		if i == numGoroutines-1 {
			partEnd = dataSize
		}

		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(partStart, partEnd)
	}

	wg.Wait()
}
