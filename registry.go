package pixfmt

// FormatInfo contains the physical properties of a pixel format.
type FormatInfo struct {
	// ScalarKind is the storage type of one component.
	ScalarKind ScalarKind

	// Components is the number of logical channels, 1 through 4.
	Components int

	// ElementByteSize is the size of the scalar underlying one component.
	// For block-compressed formats it is the conceptual scalar, not the
	// block.
	ElementByteSize int

	// BlockByteSize is the size of one addressable storage unit.
	BlockByteSize int

	// BlockWidth and BlockHeight are the pixel dimensions covered by one
	// block: 1x1 for uncompressed formats, 4x4 for BC formats.
	BlockWidth  int
	BlockHeight int

	// Compressed indicates a block-compressed format.
	Compressed bool

	// SRGB indicates sRGB-encoded color channels.
	SRGB bool
}

// defaultInfo holds the values the queries fall back to for an
// unsupported format.
var defaultInfo = FormatInfo{
	ScalarKind:      ScalarUnsignedByte,
	Components:      1,
	ElementByteSize: 1,
	BlockByteSize:   0,
	BlockWidth:      1,
	BlockHeight:     1,
}

func plain(kind ScalarKind, components int) FormatInfo {
	size := kind.ByteSize()
	return FormatInfo{
		ScalarKind:      kind,
		Components:      components,
		ElementByteSize: size,
		BlockByteSize:   size * components,
		BlockWidth:      1,
		BlockHeight:     1,
	}
}

func srgb(components int) FormatInfo {
	info := plain(ScalarUnsignedByte, components)
	info.SRGB = true
	return info
}

// bc describes a BC6H/BC7 format: 16 bytes per 4x4 block.
func bc(kind ScalarKind, components int, isSRGB bool) FormatInfo {
	return FormatInfo{
		ScalarKind:      kind,
		Components:      components,
		ElementByteSize: kind.ByteSize(),
		BlockByteSize:   16,
		BlockWidth:      4,
		BlockHeight:     4,
		Compressed:      true,
		SRGB:            isSRGB,
	}
}

// formatInfoTable contains metadata for each concrete format.
var formatInfoTable = [FormatCount]FormatInfo{
	FormatUNorm8:     plain(ScalarUnsignedByte, 1),
	FormatUNorm8Vec2: plain(ScalarUnsignedByte, 2),
	FormatUNorm8Vec3: plain(ScalarUnsignedByte, 3),
	FormatUNorm8Vec4: plain(ScalarUnsignedByte, 4),

	FormatSNorm8:     plain(ScalarSignedByte, 1),
	FormatSNorm8Vec2: plain(ScalarSignedByte, 2),
	FormatSNorm8Vec3: plain(ScalarSignedByte, 3),
	FormatSNorm8Vec4: plain(ScalarSignedByte, 4),

	FormatFloat16:     plain(ScalarHalfFloat, 1),
	FormatFloat16Vec2: plain(ScalarHalfFloat, 2),
	FormatFloat16Vec3: plain(ScalarHalfFloat, 3),
	FormatFloat16Vec4: plain(ScalarHalfFloat, 4),

	FormatFloat32:     plain(ScalarFloat, 1),
	FormatFloat32Vec2: plain(ScalarFloat, 2),
	FormatFloat32Vec3: plain(ScalarFloat, 3),
	FormatFloat32Vec4: plain(ScalarFloat, 4),

	FormatDouble64:     plain(ScalarDouble, 1),
	FormatDouble64Vec2: plain(ScalarDouble, 2),
	FormatDouble64Vec3: plain(ScalarDouble, 3),
	FormatDouble64Vec4: plain(ScalarDouble, 4),

	FormatUInt16:     plain(ScalarUnsignedShort, 1),
	FormatUInt16Vec2: plain(ScalarUnsignedShort, 2),
	FormatUInt16Vec3: plain(ScalarUnsignedShort, 3),
	FormatUInt16Vec4: plain(ScalarUnsignedShort, 4),

	FormatInt16:     plain(ScalarSignedShort, 1),
	FormatInt16Vec2: plain(ScalarSignedShort, 2),
	FormatInt16Vec3: plain(ScalarSignedShort, 3),
	FormatInt16Vec4: plain(ScalarSignedShort, 4),

	FormatUInt32:     plain(ScalarUnsignedInt, 1),
	FormatUInt32Vec2: plain(ScalarUnsignedInt, 2),
	FormatUInt32Vec3: plain(ScalarUnsignedInt, 3),
	FormatUInt32Vec4: plain(ScalarUnsignedInt, 4),

	FormatInt32:     plain(ScalarInt, 1),
	FormatInt32Vec2: plain(ScalarInt, 2),
	FormatInt32Vec3: plain(ScalarInt, 3),
	FormatInt32Vec4: plain(ScalarInt, 4),

	FormatUNorm8SRGB:     srgb(1),
	FormatUNorm8Vec2SRGB: srgb(2),
	FormatUNorm8Vec3SRGB: srgb(3),
	FormatUNorm8Vec4SRGB: srgb(4),

	FormatBC6FloatVec3:      bc(ScalarFloat, 3, false),
	FormatBC6UFloatVec3:     bc(ScalarFloat, 3, false),
	FormatBC7UNorm8Vec4:     bc(ScalarUnsignedByte, 4, false),
	FormatBC7UNorm8Vec4SRGB: bc(ScalarUnsignedByte, 4, true),
}

// Describe returns the properties of f, or an error wrapping
// ErrUnsupportedFormat when f is not a concrete format. It does not log.
func (f Format) Describe() (FormatInfo, error) {
	if !f.IsValid() {
		return defaultInfo, &FormatError{Op: "describe", Format: f}
	}
	return formatInfoTable[f], nil
}

// lookup is the shared path of the unchecked queries: it reports an
// unsupported format and hands back the defaults.
func (f Format) lookup(op string) FormatInfo {
	if !f.IsValid() {
		reportUnsupported(op, f)
		return defaultInfo
	}
	return formatInfoTable[f]
}

// Info returns the FormatInfo for this format. An unsupported format is
// reported to the package logger and yields the documented defaults.
func (f Format) Info() FormatInfo {
	return f.lookup("info")
}

// ScalarKind returns the storage type of one component.
// Unsupported formats report a diagnostic and return ScalarUnsignedByte.
func (f Format) ScalarKind() ScalarKind {
	return f.lookup("scalar kind").ScalarKind
}

// ComponentCount returns the number of channels, 1 through 4. BC6 formats
// count as 3 and BC7 formats as 4.
// Unsupported formats report a diagnostic and return 1.
func (f Format) ComponentCount() int {
	return f.lookup("component count").Components
}

// ElementByteSize returns the byte size of the scalar underlying one
// component: 2 for half floats, 8 for doubles. For block-compressed formats
// this is the conceptual scalar (1 for BC7, 4 for BC6) and never the block
// size; use BlockByteSize for buffer arithmetic.
// Unsupported formats report a diagnostic and return 1.
func (f Format) ElementByteSize() int {
	return f.lookup("element byte size").ElementByteSize
}

// BlockByteSize returns the byte size of one addressable block together
// with the block's pixel width and height. Uncompressed formats use 1x1
// blocks, so size is the bytes per pixel. BC formats use 16-byte 4x4 blocks.
// Unsupported formats report a diagnostic and return (0, 1, 1).
func (f Format) BlockByteSize() (size, blockWidth, blockHeight int) {
	info := f.lookup("block byte size")
	return info.BlockByteSize, info.BlockWidth, info.BlockHeight
}

// IsCompressed reports whether f is block-compressed. It has no failure
// case: sentinels and out of range values are simply not compressed.
func (f Format) IsCompressed() bool {
	if !f.IsValid() {
		return false
	}
	return formatInfoTable[f].Compressed
}
