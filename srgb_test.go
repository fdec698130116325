package pixfmt

import (
	"errors"
	"testing"
)

func TestFormat_IsSRGB(t *testing.T) {
	srgbFormats := map[Format]bool{
		FormatUNorm8SRGB:        true,
		FormatUNorm8Vec2SRGB:    true,
		FormatUNorm8Vec3SRGB:    true,
		FormatUNorm8Vec4SRGB:    true,
		FormatBC7UNorm8Vec4SRGB: true,
	}
	for _, f := range append(Formats(), FormatInvalid, FormatCount) {
		if got := f.IsSRGB(); got != srgbFormats[f] {
			t.Errorf("%v.IsSRGB() = %v, want %v", f, got, srgbFormats[f])
		}
	}
}

func TestFormat_SRGBVersion(t *testing.T) {
	tests := []struct {
		format   Format
		expected Format
	}{
		{FormatUNorm8, FormatUNorm8SRGB},
		{FormatUNorm8Vec3, FormatUNorm8Vec3SRGB},
		{FormatUNorm8Vec4, FormatUNorm8Vec4SRGB},
		{FormatBC7UNorm8Vec4, FormatBC7UNorm8Vec4SRGB},
		{FormatUNorm8Vec4SRGB, FormatUNorm8Vec4SRGB},
		{FormatSNorm8Vec4, FormatSNorm8Vec4},
		{FormatBC6FloatVec3, FormatBC6FloatVec3},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.SRGBVersion(); got != tt.expected {
				t.Errorf("SRGBVersion() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_LinearVersionRoundTrip(t *testing.T) {
	for _, f := range Formats() {
		if f.IsSRGB() {
			continue
		}
		if got := f.SRGBVersion().LinearVersion(); got != f {
			t.Errorf("%v.SRGBVersion().LinearVersion() = %v", f, got)
		}
	}
}

func TestFormatFor(t *testing.T) {
	for _, f := range Formats() {
		if f.IsCompressed() {
			continue
		}
		got, err := FormatFor(f.ScalarKind(), f.ComponentCount(), f.IsSRGB())
		if err != nil {
			t.Fatalf("FormatFor(%v) error = %v", f, err)
		}
		if got != f {
			t.Errorf("FormatFor(%v, %d, %v) = %v, want %v",
				f.ScalarKind(), f.ComponentCount(), f.IsSRGB(), got, f)
		}
	}
}

func TestFormatFor_Errors(t *testing.T) {
	tests := []struct {
		name       string
		kind       ScalarKind
		components int
		srgb       bool
	}{
		{"zero components", ScalarFloat, 0, false},
		{"five components", ScalarFloat, 5, false},
		{"srgb float", ScalarFloat, 4, true},
		{"unknown kind", scalarCount, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatFor(tt.kind, tt.components, tt.srgb)
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("FormatFor() error = %v, want ErrUnsupportedFormat", err)
			}
			if got != FormatInvalid {
				t.Errorf("FormatFor() = %v, want Invalid", got)
			}
		})
	}
}
