package pixfmt

import (
	"fmt"
	"strings"
)

var formatNames = [FormatCount]string{
	FormatUNorm8:     "UNorm8",
	FormatUNorm8Vec2: "UNorm8Vec2",
	FormatUNorm8Vec3: "UNorm8Vec3",
	FormatUNorm8Vec4: "UNorm8Vec4",

	FormatSNorm8:     "SNorm8",
	FormatSNorm8Vec2: "SNorm8Vec2",
	FormatSNorm8Vec3: "SNorm8Vec3",
	FormatSNorm8Vec4: "SNorm8Vec4",

	FormatFloat16:     "Float16",
	FormatFloat16Vec2: "Float16Vec2",
	FormatFloat16Vec3: "Float16Vec3",
	FormatFloat16Vec4: "Float16Vec4",

	FormatFloat32:     "Float32",
	FormatFloat32Vec2: "Float32Vec2",
	FormatFloat32Vec3: "Float32Vec3",
	FormatFloat32Vec4: "Float32Vec4",

	FormatDouble64:     "Double64",
	FormatDouble64Vec2: "Double64Vec2",
	FormatDouble64Vec3: "Double64Vec3",
	FormatDouble64Vec4: "Double64Vec4",

	FormatUInt16:     "UInt16",
	FormatUInt16Vec2: "UInt16Vec2",
	FormatUInt16Vec3: "UInt16Vec3",
	FormatUInt16Vec4: "UInt16Vec4",

	FormatInt16:     "Int16",
	FormatInt16Vec2: "Int16Vec2",
	FormatInt16Vec3: "Int16Vec3",
	FormatInt16Vec4: "Int16Vec4",

	FormatUInt32:     "UInt32",
	FormatUInt32Vec2: "UInt32Vec2",
	FormatUInt32Vec3: "UInt32Vec3",
	FormatUInt32Vec4: "UInt32Vec4",

	FormatInt32:     "Int32",
	FormatInt32Vec2: "Int32Vec2",
	FormatInt32Vec3: "Int32Vec3",
	FormatInt32Vec4: "Int32Vec4",

	FormatUNorm8SRGB:     "UNorm8SRGB",
	FormatUNorm8Vec2SRGB: "UNorm8Vec2SRGB",
	FormatUNorm8Vec3SRGB: "UNorm8Vec3SRGB",
	FormatUNorm8Vec4SRGB: "UNorm8Vec4SRGB",

	FormatBC6FloatVec3:      "BC6FloatVec3",
	FormatBC6UFloatVec3:     "BC6UFloatVec3",
	FormatBC7UNorm8Vec4:     "BC7UNorm8Vec4",
	FormatBC7UNorm8Vec4SRGB: "BC7UNorm8Vec4SRGB",
}

// String returns the catalogue name of the format, e.g. "Float16Vec4".
func (f Format) String() string {
	switch {
	case f == FormatInvalid:
		return "Invalid"
	case f == FormatCount:
		return "Count"
	case !f.IsValid():
		return fmt.Sprintf("Format(%d)", int32(f))
	}
	return formatNames[f]
}

// ParseFormat returns the concrete format with the given name. Matching
// ignores case, so "bc7unorm8vec4srgb" resolves too. The sentinel names
// are rejected.
func ParseFormat(name string) (Format, error) {
	for f := Format(0); f < FormatCount; f++ {
		if strings.EqualFold(formatNames[f], name) {
			return f, nil
		}
	}
	return FormatInvalid, fmt.Errorf("unknown format name %q: %w", name, ErrUnsupportedFormat)
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, &FormatError{Op: "marshal", Format: f}
	}
	return []byte(formatNames[f]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
