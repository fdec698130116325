package pixfmt

import (
	"errors"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatUNorm8, "UNorm8"},
		{FormatFloat16Vec4, "Float16Vec4"},
		{FormatInt32Vec3, "Int32Vec3"},
		{FormatUNorm8Vec2SRGB, "UNorm8Vec2SRGB"},
		{FormatBC6UFloatVec3, "BC6UFloatVec3"},
		{FormatBC7UNorm8Vec4SRGB, "BC7UNorm8Vec4SRGB"},
		{FormatInvalid, "Invalid"},
		{FormatCount, "Count"},
		{Format(-9), "Format(-9)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.format.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseFormat_RoundTrip(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("ParseFormat(%q) error = %v", f.String(), err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %v, want %v", f.String(), got, f)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"float32vec4", FormatFloat32Vec4, false},
		{"BC7UNORM8VEC4SRGB", FormatBC7UNorm8Vec4SRGB, false},
		{"Invalid", FormatInvalid, true},
		{"Count", FormatInvalid, true},
		{"", FormatInvalid, true},
		{"RGBA8", FormatInvalid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("error %v does not wrap ErrUnsupportedFormat", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestFormat_TextMarshaling(t *testing.T) {
	text, err := FormatUInt16Vec3.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "UInt16Vec3" {
		t.Errorf("MarshalText() = %q, want %q", text, "UInt16Vec3")
	}

	var f Format
	if err := f.UnmarshalText([]byte("bc6floatvec3")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if f != FormatBC6FloatVec3 {
		t.Errorf("UnmarshalText() = %v, want BC6FloatVec3", f)
	}

	if _, err := FormatInvalid.MarshalText(); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("MarshalText() on Invalid error = %v, want ErrUnsupportedFormat", err)
	}
}
