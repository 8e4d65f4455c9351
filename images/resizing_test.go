package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeSquare(t *testing.T) {
	tests := []struct {
		name    string
		side    int
		target  int
		resized bool
	}{
		{"Upscale", 100, 256, true},
		{"Downscale", 300, 64, true},
		{"Same size", 128, 128, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newField(tt.side, tt.side, contentRed)

			out, resized := ResizeSquare(img, tt.target)
			assert.Equal(t, tt.resized, resized)
			require.Equal(t, tt.target, out.Rect.Dx())
			require.Equal(t, tt.target, out.Rect.Dy())
			assert.Equal(t, 0, out.Rect.Min.X)
			assert.Equal(t, 0, out.Rect.Min.Y)
		})
	}
}

func TestResizeSquare_SameSizeReturnsInput(t *testing.T) {
	img := newField(32, 32, contentRed)
	out, _ := ResizeSquare(img, 32)
	assert.Same(t, img, out)
}

func TestResizeSquare_PreservesSolidColor(t *testing.T) {
	solid := color.NRGBA{R: 40, G: 120, B: 220, A: 255}
	out, _ := ResizeSquare(newField(50, 50, solid), 200)

	got := out.NRGBAAt(100, 100)
	assert.InDelta(t, solid.R, got.R, 1)
	assert.InDelta(t, solid.G, got.G, 1)
	assert.InDelta(t, solid.B, got.B, 1)
	assert.InDelta(t, 255, got.A, 1)
}

func TestResizeSquare_TransparentEdgesDoNotWrap(t *testing.T) {
	// Columns cycle transparent, opaque black, opaque white.
	stripes := []color.NRGBA{
		{},
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
	img := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			img.SetNRGBA(x, y, stripes[x%3])
		}
	}

	out, resized := ResizeSquare(img, 64)
	require.True(t, resized)

	// x=59 samples the middle of the white column at the right edge.
	got := out.NRGBAAt(59, 32)
	assert.Greater(t, got.A, uint8(0))
	assert.GreaterOrEqual(t, got.R, uint8(250), "white came out as %v", got)
	assert.GreaterOrEqual(t, got.G, uint8(250), "white came out as %v", got)
	assert.GreaterOrEqual(t, got.B, uint8(250), "white came out as %v", got)

	for x := 0; x < 64; x++ {
		c := out.NRGBAAt(x, 32)
		if c.A == 0 {
			assert.Equal(t, color.NRGBA{}, c, "x=%d", x)
			continue
		}
		assert.Equal(t, c.R, c.G, "x=%d", x)
		assert.Equal(t, c.R, c.B, "x=%d", x)
	}
}

func TestUnpremultiply(t *testing.T) {
	tests := []struct {
		name     string
		in       color.RGBA
		expected color.NRGBA
	}{
		{"Opaque", color.RGBA{R: 128, G: 64, B: 32, A: 255}, color.NRGBA{R: 128, G: 64, B: 32, A: 255}},
		{"Half alpha", color.RGBA{R: 50, G: 10, B: 0, A: 100}, color.NRGBA{R: 128, G: 26, B: 0, A: 100}},
		{"Channel above alpha", color.RGBA{R: 200, G: 100, B: 0, A: 100}, color.NRGBA{R: 255, G: 255, B: 0, A: 100}},
		{"Transparent", color.RGBA{R: 12, G: 0, B: 0, A: 0}, color.NRGBA{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, 1, 1))
			src.SetRGBA(0, 0, tt.in)
			assert.Equal(t, tt.expected, unpremultiply(src).NRGBAAt(0, 0))
		})
	}
}

func BenchmarkResizeSquare(b *testing.B) {
	img := newField(1500, 1500, contentRed)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ResizeSquare(img, DefaultIconSize)
	}
}
