package icon

import (
	"fmt"

	"github.com/nvr-ai/go-iconkit/images"
)

// Report records what each pipeline stage did to one image.
type Report struct {
	// Source describes the decoded input file. Empty for in-memory images.
	Source images.Image `json:"source"`
	// OriginalWidth and OriginalHeight are the decoded dimensions.
	OriginalWidth  int `json:"originalWidth"`
	OriginalHeight int `json:"originalHeight"`
	// SourceModel is the color model the decoder produced.
	SourceModel string `json:"sourceModel"`
	// Converted is true when the source was converted to NRGBA.
	Converted bool `json:"converted"`
	// BorderCropped is true when a border was detected and removed.
	BorderCropped bool `json:"borderCropped"`
	// ContentBounds is the padded region kept by the border crop.
	ContentBounds images.Rect `json:"contentBounds"`
	// SquareCropped is true when a center crop made the image square.
	SquareCropped bool `json:"squareCropped"`
	// Resized is true when the image was resampled.
	Resized bool `json:"resized"`
	// CornerRadius is the applied corner radius in pixels.
	CornerRadius int `json:"cornerRadius"`
	// Size is the side length of the output.
	Size int `json:"size"`
	// Checksum is the MD5 of the output pixels.
	Checksum string `json:"checksum"`
	// Warnings lists degraded-but-successful conditions.
	Warnings []string `json:"warnings,omitempty"`
}

func (r *Report) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
