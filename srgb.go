package pixfmt

import "fmt"

// IsSRGB returns true if the color channels of f are sRGB-encoded.
func (f Format) IsSRGB() bool {
	if !f.IsValid() {
		return false
	}
	return formatInfoTable[f].SRGB
}

// SRGBVersion returns the sRGB-encoded variant of this format.
// Returns the same format if already sRGB or if no sRGB variant exists.
func (f Format) SRGBVersion() Format {
	switch f {
	case FormatUNorm8:
		return FormatUNorm8SRGB
	case FormatUNorm8Vec2:
		return FormatUNorm8Vec2SRGB
	case FormatUNorm8Vec3:
		return FormatUNorm8Vec3SRGB
	case FormatUNorm8Vec4:
		return FormatUNorm8Vec4SRGB
	case FormatBC7UNorm8Vec4:
		return FormatBC7UNorm8Vec4SRGB
	default:
		return f
	}
}

// LinearVersion returns the linear variant of this format.
// Returns the same format if already linear.
func (f Format) LinearVersion() Format {
	switch f {
	case FormatUNorm8SRGB:
		return FormatUNorm8
	case FormatUNorm8Vec2SRGB:
		return FormatUNorm8Vec2
	case FormatUNorm8Vec3SRGB:
		return FormatUNorm8Vec3
	case FormatUNorm8Vec4SRGB:
		return FormatUNorm8Vec4
	case FormatBC7UNorm8Vec4SRGB:
		return FormatBC7UNorm8Vec4
	default:
		return f
	}
}

// FormatFor returns the uncompressed format storing components channels
// of kind. With srgb set only ScalarUnsignedByte has a match.
func FormatFor(kind ScalarKind, components int, srgb bool) (Format, error) {
	if !kind.IsValid() {
		return FormatInvalid, fmt.Errorf("unknown scalar kind %d: %w", uint8(kind), ErrUnsupportedFormat)
	}
	if components < 1 || components > 4 {
		return FormatInvalid, fmt.Errorf("%d components: %w", components, ErrUnsupportedFormat)
	}
	if srgb {
		if kind != ScalarUnsignedByte {
			return FormatInvalid, fmt.Errorf("no sRGB %s format: %w", kind, ErrUnsupportedFormat)
		}
		return FormatUNorm8SRGB + Format(components-1), nil
	}
	// The nine linear groups are laid out in ScalarKind order, four
	// component counts each.
	return Format(int(kind)*4 + components - 1), nil
}
