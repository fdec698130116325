package pixfmt

// Format identifies a concrete pixel layout.
//
// The zero value is FormatUNorm8. FormatInvalid and FormatCount are
// sentinels and are never valid inputs to the classification queries.
type Format int32

// FormatInvalid marks an unset or unrecognized format.
const FormatInvalid Format = -1

const (
	// 8-bit unsigned normalized integer per component.
	FormatUNorm8 Format = iota
	FormatUNorm8Vec2
	FormatUNorm8Vec3
	FormatUNorm8Vec4

	// 8-bit signed normalized integer per component.
	FormatSNorm8
	FormatSNorm8Vec2
	FormatSNorm8Vec3
	FormatSNorm8Vec4

	// IEEE 754 half-precision float per component.
	FormatFloat16
	FormatFloat16Vec2
	FormatFloat16Vec3
	FormatFloat16Vec4

	// IEEE 754 single-precision float per component.
	FormatFloat32
	FormatFloat32Vec2
	FormatFloat32Vec3
	FormatFloat32Vec4

	// IEEE 754 double-precision float per component.
	FormatDouble64
	FormatDouble64Vec2
	FormatDouble64Vec3
	FormatDouble64Vec4

	// 16-bit unsigned integer per component.
	FormatUInt16
	FormatUInt16Vec2
	FormatUInt16Vec3
	FormatUInt16Vec4

	// 16-bit signed integer per component.
	FormatInt16
	FormatInt16Vec2
	FormatInt16Vec3
	FormatInt16Vec4

	// 32-bit unsigned integer per component.
	FormatUInt32
	FormatUInt32Vec2
	FormatUInt32Vec3
	FormatUInt32Vec4

	// 32-bit signed integer per component.
	FormatInt32
	FormatInt32Vec2
	FormatInt32Vec3
	FormatInt32Vec4

	// 8-bit unsigned normalized with sRGB-encoded color channels. Alpha,
	// when present, stays linear.
	FormatUNorm8SRGB
	FormatUNorm8Vec2SRGB
	FormatUNorm8Vec3SRGB
	FormatUNorm8Vec4SRGB

	// Block-compressed formats. Each 16-byte block covers a 4x4 tile of
	// pixels.

	// FormatBC6FloatVec3 is BC6H, signed half-float RGB.
	FormatBC6FloatVec3
	// FormatBC6UFloatVec3 is BC6H, unsigned half-float RGB.
	FormatBC6UFloatVec3
	// FormatBC7UNorm8Vec4 is BC7 RGBA.
	FormatBC7UNorm8Vec4
	// FormatBC7UNorm8Vec4SRGB is BC7 RGBA with sRGB-encoded color.
	FormatBC7UNorm8Vec4SRGB

	// FormatCount is one past the last concrete format. It is only
	// meaningful for range checks.
	FormatCount
)

// IsValid reports whether f is a concrete format, that is neither a
// sentinel nor out of range.
func (f Format) IsValid() bool {
	return f >= 0 && f < FormatCount
}

// Formats returns every concrete format in ordinal order.
func Formats() []Format {
	out := make([]Format, 0, FormatCount)
	for f := Format(0); f < FormatCount; f++ {
		out = append(out, f)
	}
	return out
}
