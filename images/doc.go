// Package images provides the pixel operations behind icon normalization:
// color model conversion, content detection, cropping, resampling and masking.
//
// Buffers are non-premultiplied *image.NRGBA anchored at the origin. The
// macOS iconset renditions in resolutions.go all share one corner radius
// ratio, so an icon normalized at any of those sizes matches the system's own
// rounding.
package images
