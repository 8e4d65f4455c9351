package images

import (
	"fmt"
	"sort"
)

// DefaultCornerRadiusRatio is the corner radius as a fraction of the icon side
// used by the macOS app icon grid.
const DefaultCornerRadiusRatio = 0.215

// DefaultIconSize is the side length of the largest macOS icon rendition.
const DefaultIconSize = 1024

// IconSpecName identifies an iconset rendition by its file stem.
type IconSpecName string

// Defines the renditions of a macOS .iconset directory.
const (
	IconSpec16    IconSpecName = "icon_16x16"
	IconSpec16x2  IconSpecName = "icon_16x16@2x"
	IconSpec32    IconSpecName = "icon_32x32"
	IconSpec32x2  IconSpecName = "icon_32x32@2x"
	IconSpec128   IconSpecName = "icon_128x128"
	IconSpec128x2 IconSpecName = "icon_128x128@2x"
	IconSpec256   IconSpecName = "icon_256x256"
	IconSpec256x2 IconSpecName = "icon_256x256@2x"
	IconSpec512   IconSpecName = "icon_512x512"
	IconSpec512x2 IconSpecName = "icon_512x512@2x"
)

// IconSpec describes the pixel size and corner rounding of one rendition.
type IconSpec struct {
	Name              IconSpecName `json:"name"`
	Size              int          `json:"size"`
	CornerRadiusRatio float64      `json:"cornerRadiusRatio"`
}

// CornerRadius returns the corner radius in whole pixels.
func (s IconSpec) CornerRadius() int {
	return int(float64(s.Size) * s.CornerRadiusRatio)
}

// String returns a human-readable summary of the rendition.
func (s IconSpec) String() string {
	return fmt.Sprintf("%s (%dx%d, radius %dpx)", s.Name, s.Size, s.Size, s.CornerRadius())
}

// iconSpecs stores every rendition keyed by name.
var iconSpecs = map[IconSpecName]IconSpec{
	IconSpec16:    {Name: IconSpec16, Size: 16, CornerRadiusRatio: DefaultCornerRadiusRatio},
	IconSpec16x2:  {Name: IconSpec16x2, Size: 32, CornerRadiusRatio: DefaultCornerRadiusRatio},
	IconSpec32:    {Name: IconSpec32, Size: 32, CornerRadiusRatio: DefaultCornerRadiusRatio},
	IconSpec32x2:  {Name: IconSpec32x2, Size: 64, CornerRadiusRatio: DefaultCornerRadiusRatio},
	IconSpec128:   {Name: IconSpec128, Size: 128, CornerRadiusRatio: DefaultCornerRadiusRatio},
	IconSpec128x2: {Name: IconSpec128x2, Size: 256, CornerRadiusRatio: DefaultCornerRadiusRatio},
	IconSpec256:   {Name: IconSpec256, Size: 256, CornerRadiusRatio: DefaultCornerRadiusRatio},
	IconSpec256x2: {Name: IconSpec256x2, Size: 512, CornerRadiusRatio: DefaultCornerRadiusRatio},
	IconSpec512:   {Name: IconSpec512, Size: 512, CornerRadiusRatio: DefaultCornerRadiusRatio},
	IconSpec512x2: {Name: IconSpec512x2, Size: DefaultIconSize, CornerRadiusRatio: DefaultCornerRadiusRatio},
}

// GetIconSpecs returns every rendition ordered by size, then name.
// O(N log N) complexity, where N is the number of renditions.
func GetIconSpecs() []IconSpec {
	all := make([]IconSpec, 0, len(iconSpecs))
	for _, spec := range iconSpecs {
		all = append(all, spec)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Size != all[j].Size {
			return all[i].Size < all[j].Size
		}
		return all[i].Name < all[j].Name
	})
	return all
}

// GetIconSpec retrieves a rendition by name.
// It returns the IconSpec and true if found, otherwise an empty IconSpec and false.
// O(1) complexity due to map lookup.
func GetIconSpec(name IconSpecName) (IconSpec, bool) {
	spec, ok := iconSpecs[name]
	return spec, ok
}
