package images

import (
	"fmt"
	"image"
	"image/color"
)

// Image describes a decoded source image.
type Image struct {
	// The format of the image.
	Format ImageFormat `json:"format" yaml:"format"`
	// The width of the image.
	Width int `json:"width" yaml:"width"`
	// The height of the image.
	Height int `json:"height" yaml:"height"`
	// The color model the decoder produced, e.g. "NRGBA" or "YCbCr".
	Model string `json:"model" yaml:"model"`
}

// Describe builds the Image description of a decoded image.
func Describe(img image.Image, format ImageFormat) Image {
	bounds := img.Bounds()
	return Image{
		Format: format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Model:  ModelName(img.ColorModel()),
	}
}

// String returns a human-readable summary of the image.
func (i Image) String() string {
	return fmt.Sprintf("%s %dx%d (%s)", i.Format, i.Width, i.Height, i.Model)
}

// ModelName returns a short name for the standard library color models.
func ModelName(m color.Model) string {
	if _, ok := m.(color.Palette); ok {
		return "Paletted"
	}
	switch m {
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.AlphaModel:
		return "Alpha"
	case color.Alpha16Model:
		return "Alpha16"
	case color.YCbCrModel:
		return "YCbCr"
	case color.NYCbCrAModel:
		return "NYCbCrA"
	case color.CMYKModel:
		return "CMYK"
	}
	return fmt.Sprintf("%T", m)
}
