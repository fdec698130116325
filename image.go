package pixfmt

import "image"

// FormatOfImage returns the catalogue format matching the pixel storage of
// a standard library image, along with its extent. The 8-bit RGBA types map
// to UNorm8Vec4SRGB since Go's color model is sRGB-encoded; the 16-bit
// types map to UInt16 layouts since the catalogue has no 16-bit
// normalized formats. ok is false for paletted, YCbCr and other types
// without a direct layout.
func FormatOfImage(img image.Image) (f Format, e Extent, ok bool) {
	switch img.(type) {
	case *image.Gray, *image.Alpha:
		f = FormatUNorm8
	case *image.Gray16, *image.Alpha16:
		f = FormatUInt16
	case *image.RGBA, *image.NRGBA:
		f = FormatUNorm8Vec4SRGB
	case *image.RGBA64, *image.NRGBA64:
		f = FormatUInt16Vec4
	default:
		return FormatInvalid, Extent{}, false
	}
	b := img.Bounds()
	return f, Extent{Width: b.Dx(), Height: b.Dy(), Depth: 1}, true
}
