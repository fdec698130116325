package pixfmt

import (
	"math"

	"github.com/gogpu/gputypes"
)

// textureFormats maps catalogue formats onto WebGPU texture formats.
// WebGPU has no 3-channel, double or 1/2-channel sRGB layouts; those
// formats are absent.
var textureFormats = map[Format]gputypes.TextureFormat{
	FormatUNorm8:     gputypes.TextureFormatR8Unorm,
	FormatUNorm8Vec2: gputypes.TextureFormatRG8Unorm,
	FormatUNorm8Vec4: gputypes.TextureFormatRGBA8Unorm,

	FormatSNorm8:     gputypes.TextureFormatR8Snorm,
	FormatSNorm8Vec2: gputypes.TextureFormatRG8Snorm,
	FormatSNorm8Vec4: gputypes.TextureFormatRGBA8Snorm,

	FormatFloat16:     gputypes.TextureFormatR16Float,
	FormatFloat16Vec2: gputypes.TextureFormatRG16Float,
	FormatFloat16Vec4: gputypes.TextureFormatRGBA16Float,

	FormatFloat32:     gputypes.TextureFormatR32Float,
	FormatFloat32Vec2: gputypes.TextureFormatRG32Float,
	FormatFloat32Vec4: gputypes.TextureFormatRGBA32Float,

	FormatUInt16:     gputypes.TextureFormatR16Uint,
	FormatUInt16Vec2: gputypes.TextureFormatRG16Uint,
	FormatUInt16Vec4: gputypes.TextureFormatRGBA16Uint,

	FormatInt16:     gputypes.TextureFormatR16Sint,
	FormatInt16Vec2: gputypes.TextureFormatRG16Sint,
	FormatInt16Vec4: gputypes.TextureFormatRGBA16Sint,

	FormatUInt32:     gputypes.TextureFormatR32Uint,
	FormatUInt32Vec2: gputypes.TextureFormatRG32Uint,
	FormatUInt32Vec4: gputypes.TextureFormatRGBA32Uint,

	FormatInt32:     gputypes.TextureFormatR32Sint,
	FormatInt32Vec2: gputypes.TextureFormatRG32Sint,
	FormatInt32Vec4: gputypes.TextureFormatRGBA32Sint,

	FormatUNorm8Vec4SRGB: gputypes.TextureFormatRGBA8UnormSrgb,

	FormatBC6FloatVec3:      gputypes.TextureFormatBC6HRGBFloat,
	FormatBC6UFloatVec3:     gputypes.TextureFormatBC6HRGBUfloat,
	FormatBC7UNorm8Vec4:     gputypes.TextureFormatBC7RGBAUnorm,
	FormatBC7UNorm8Vec4SRGB: gputypes.TextureFormatBC7RGBAUnormSrgb,
}

// formatsByTexture is the inverse of textureFormats.
var formatsByTexture = func() map[gputypes.TextureFormat]Format {
	m := make(map[gputypes.TextureFormat]Format, len(textureFormats))
	for f, tf := range textureFormats {
		m[tf] = f
	}
	return m
}()

// TextureFormat returns the WebGPU texture format with the same memory
// layout as f. ok is false when WebGPU has no equivalent, in which case
// TextureFormatUndefined is returned.
func (f Format) TextureFormat() (tf gputypes.TextureFormat, ok bool) {
	tf, ok = textureFormats[f]
	if !ok {
		return gputypes.TextureFormatUndefined, false
	}
	return tf, true
}

// FormatFromTexture returns the catalogue format for a WebGPU texture
// format, or FormatInvalid and false if there is none.
func FormatFromTexture(tf gputypes.TextureFormat) (Format, bool) {
	f, ok := formatsByTexture[tf]
	if !ok {
		return FormatInvalid, false
	}
	return f, true
}

// ExtentFromGPU converts a WebGPU extent. DepthOrArrayLayers becomes Depth.
func ExtentFromGPU(e gputypes.Extent3D) Extent {
	return Extent{
		Width:  int(e.Width),
		Height: int(e.Height),
		Depth:  int(e.DepthOrArrayLayers),
	}
}

// GPU converts the extent to a WebGPU extent, clamping negative
// dimensions to zero, depth to at least one layer, and everything to
// math.MaxUint32.
func (e Extent) GPU() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              clampUint32(max(0, e.Width)),
		Height:             clampUint32(max(0, e.Height)),
		DepthOrArrayLayers: clampUint32(max(1, e.Depth)),
	}
}

// TextureDataLayout returns the tightly packed buffer layout of an image of
// extent e in f, as used by buffer/texture copies. BytesPerRow spans one
// row of blocks and RowsPerImage counts block rows, so BC formats are laid
// out in 4x4 tiles. Both fields clamp at math.MaxUint32; a layout that
// clamps describes a texture no WebGPU device can hold.
func (f Format) TextureDataLayout(e Extent) gputypes.TextureDataLayout {
	size, bw, bh := f.BlockByteSize()
	across, down := blocksCovering(e.Width, bw), blocksCovering(e.Height, bh)
	return gputypes.TextureDataLayout{
		BytesPerRow:  clampUint32(mulSat(across, size)),
		RowsPerImage: clampUint32(down),
	}
}

func clampUint32(n int) uint32 {
	if uint64(n) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}
