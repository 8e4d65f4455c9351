package images

import (
	"fmt"
	"image"
)

// Rect is a lightweight bounding box.
type Rect struct {
	// X2,Y2 are exclusive (like image.Rectangle).
	X1, Y1, X2, Y2 int
}

// Width returns the horizontal extent of the box.
func (r Rect) Width() int { return r.X2 - r.X1 }

// Height returns the vertical extent of the box.
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// Empty reports whether the box holds no pixels.
func (r Rect) Empty() bool { return r.X1 >= r.X2 || r.Y1 >= r.Y2 }

// Expand grows the box by pad pixels on every side. The result may extend past
// the image; callers clip it with Clip.
//
// Arguments:
// - pad: Number of pixels to add on each side. Negative values are treated as 0.
//
// Returns:
// - The expanded box.
//
// @example
// padded := Rect{10, 10, 20, 20}.Expand(2) // {8, 8, 22, 22}
func (r Rect) Expand(pad int) Rect {
	if pad < 0 {
		pad = 0
	}
	return Rect{X1: r.X1 - pad, Y1: r.Y1 - pad, X2: r.X2 + pad, Y2: r.Y2 + pad}
}

// Clip restricts the box to an image of the given width and height.
//
// Arguments:
// - width: Image width in pixels.
// - height: Image height in pixels.
//
// Returns:
// - The box clamped to [0, width) x [0, height).
func (r Rect) Clip(width, height int) Rect {
	return Rect{
		X1: Clamp(r.X1, 0, width),
		Y1: Clamp(r.Y1, 0, height),
		X2: Clamp(r.X2, 0, width),
		Y2: Clamp(r.Y2, 0, height),
	}
}

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return o.X1 >= r.X1 && o.Y1 >= r.Y1 && o.X2 <= r.X2 && o.Y2 <= r.Y2
}

// Rectangle converts the box to an image.Rectangle.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// String formats the box as its corner coordinates.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}
